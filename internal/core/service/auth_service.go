package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillforge/course-platform/internal/api/metrics"
	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
	"github.com/skillforge/course-platform/internal/pkg/token"
)

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// AuthService implements signup and signin for one credential namespace.
type AuthService struct {
	repo      ports.AccountRepository
	namespace domain.Namespace
	secret    string
	log       zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, namespace domain.Namespace, secret string, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, namespace: namespace, secret: secret, log: log}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	if err := checkPasswordPolicy(in.Password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &domain.Account{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, account); err != nil {
		s.log.Error().Err(err).Str("namespace", string(s.namespace)).Msg("signup failed")
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(s.namespace)).Inc()
	s.log.Info().Str("namespace", string(s.namespace)).Str("email", in.Email).Msg("account created")
	return nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.SigninsTotal.WithLabelValues(string(s.namespace), "unknown_email").Inc()
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.SigninsTotal.WithLabelValues(string(s.namespace), "bad_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	tok, err := token.Issue(account.ID, s.secret)
	if err != nil {
		return "", err
	}

	metrics.SigninsTotal.WithLabelValues(string(s.namespace), "ok").Inc()
	s.log.Info().Str("namespace", string(s.namespace)).Str("account_id", account.ID).Msg("signin")
	return tok, nil
}

// checkPasswordPolicy enforces the signup password rules: 3..100 characters
// with at least one uppercase letter, one lowercase letter, and one character
// from passwordSpecialChars.
func checkPasswordPolicy(password string) error {
	if len(password) < 3 || len(password) > 100 {
		return domain.ErrWeakPassword
	}

	var upper, lower, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	if !upper || !lower || !special {
		return domain.ErrWeakPassword
	}
	return nil
}
