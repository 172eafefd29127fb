package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillforge/course-platform/internal/api/metrics"
	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
)

// CatalogCache abstracts the Redis-backed cache for the public course listing.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Course, bool, error)
	Set(ctx context.Context, courses []domain.Course) error
	Invalidate(ctx context.Context) error
}

// CourseService implements catalog use cases. Writes always carry the
// authenticated admin as creator; reads are either creator-scoped or the full
// public catalog.
type CourseService struct {
	repo  ports.CourseRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache CatalogCache, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, log: log}
}

// Create persists a new course with CreatorID taken from the authenticated
// admin. Any creator supplied by the client was already discarded at the
// handler boundary.
func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (string, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		CreatorID:   in.CreatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Str("creator_id", in.CreatorID).Msg("failed to create course")
		return "", err
	}

	s.invalidateCatalog(ctx)
	metrics.CoursesCreatedTotal.Inc()
	s.log.Info().Str("course_id", id).Str("creator_id", in.CreatorID).Msg("course created")
	return id, nil
}

// Update overwrites the course's fields when it exists and belongs to the
// caller. A non-matching courseID/creatorID pair touches zero documents and
// still succeeds; another admin's course is never modified.
func (s *CourseService) Update(ctx context.Context, in ports.UpdateCourseInput) error {
	fields := domain.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.UpdateOwned(ctx, in.CourseID, in.CreatorID, fields); err != nil {
		s.log.Error().Err(err).Str("course_id", in.CourseID).Msg("failed to update course")
		return err
	}

	s.invalidateCatalog(ctx)
	s.log.Info().Str("course_id", in.CourseID).Str("creator_id", in.CreatorID).Msg("course updated")
	return nil
}

func (s *CourseService) ListByCreator(ctx context.Context, creatorID string) ([]domain.Course, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

// ListAll serves the public catalog, preferring the cache. A cache failure is
// logged and falls through to the repository.
func (s *CourseService) ListAll(ctx context.Context) ([]domain.Course, error) {
	if courses, ok, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed")
	} else if ok {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return courses, nil
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, courses); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache write failed")
	}
	return courses, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
