package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillforge/course-platform/internal/api/metrics"
	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
)

// PurchaseService implements the purchase use cases.
type PurchaseService struct {
	purchases ports.PurchaseRepository
	courses   ports.CourseRepository
	log       zerolog.Logger
}

func NewPurchaseService(purchases ports.PurchaseRepository, courses ports.CourseRepository, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{purchases: purchases, courses: courses, log: log}
}

// Record appends a purchase. The course reference is not validated and no
// payment is verified.
func (s *PurchaseService) Record(ctx context.Context, userID, courseID string) error {
	purchase := &domain.Purchase{
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("failed to record purchase")
		return err
	}

	metrics.PurchasesTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("course_id", courseID).Msg("purchase recorded")
	return nil
}

// ListForUser returns the user's purchase records together with the catalog
// details of every purchased course.
func (s *PurchaseService) ListForUser(ctx context.Context, userID string) (*ports.UserPurchases, error) {
	purchases, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]string, 0, len(purchases))
	for _, p := range purchases {
		courseIDs = append(courseIDs, p.CourseID)
	}

	courses := []domain.Course{}
	if len(courseIDs) > 0 {
		courses, err = s.courses.FindByIDs(ctx, courseIDs)
		if err != nil {
			return nil, err
		}
	}

	return &ports.UserPurchases{Purchases: purchases, Courses: courses}, nil
}
