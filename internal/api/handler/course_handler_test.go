package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/api/middleware"
	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
)

type stubCourseService struct {
	createFn        func(ctx context.Context, in ports.CreateCourseInput) (string, error)
	updateFn        func(ctx context.Context, in ports.UpdateCourseInput) error
	listByCreatorFn func(ctx context.Context, creatorID string) ([]domain.Course, error)
	listAllFn       func(ctx context.Context) ([]domain.Course, error)
}

func (s *stubCourseService) Create(ctx context.Context, in ports.CreateCourseInput) (string, error) {
	return s.createFn(ctx, in)
}

func (s *stubCourseService) Update(ctx context.Context, in ports.UpdateCourseInput) error {
	return s.updateFn(ctx, in)
}

func (s *stubCourseService) ListByCreator(ctx context.Context, creatorID string) ([]domain.Course, error) {
	return s.listByCreatorFn(ctx, creatorID)
}

func (s *stubCourseService) ListAll(ctx context.Context) ([]domain.Course, error) {
	return s.listAllFn(ctx)
}

func newCourseContext(t *testing.T, method, path, body, adminID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if adminID != "" {
		c.Set(middleware.SubjectIDKey, adminID)
	}
	return c, rec
}

func TestCourseHandler_Create_ForcesCreatorFromToken(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, in ports.CreateCourseInput) (string, error) {
			if in.CreatorID != "admin-a" {
				t.Fatalf("creator must come from the token, got %q", in.CreatorID)
			}
			return "66100000000000000000aaaa", nil
		},
	}
	h := NewCourseHandler(stub)

	// The body tries to smuggle a different creatorId; it must be discarded.
	c, rec := newCourseContext(t, http.MethodPost, "/api/v1/admin/course",
		`{"title":"Go","description":"d","imageUrl":"http://img","price":10,"creatorId":"admin-z"}`, "admin-a")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeMessage(t, rec)
	if resp["message"] != "Course Created" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["courseId"] != "66100000000000000000aaaa" {
		t.Fatalf("unexpected courseId: %v", resp["courseId"])
	}
}

func TestCourseHandler_Create_NoSubject(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, in ports.CreateCourseInput) (string, error) {
			t.Fatalf("service must not be called without a subject")
			return "", nil
		},
	}
	h := NewCourseHandler(stub)

	c, _ := newCourseContext(t, http.MethodPost, "/api/v1/admin/course", `{"title":"Go"}`, "")

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestCourseHandler_Update_EchoesRequestCourseID(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(ctx context.Context, in ports.UpdateCourseInput) error {
			if in.CourseID != "66100000000000000000bbbb" || in.CreatorID != "admin-a" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	}
	h := NewCourseHandler(stub)

	c, rec := newCourseContext(t, http.MethodPut, "/api/v1/admin/course",
		`{"title":"Go v2","description":"d","imageUrl":"http://img","price":20,"courseId":"66100000000000000000bbbb"}`, "admin-a")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeMessage(t, rec)
	if resp["message"] != "Course Updated" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["courseId"] != "66100000000000000000bbbb" {
		t.Fatalf("response must echo the requested course id, got %v", resp["courseId"])
	}
}

func TestCourseHandler_ListMine(t *testing.T) {
	stub := &stubCourseService{
		listByCreatorFn: func(ctx context.Context, creatorID string) ([]domain.Course, error) {
			if creatorID != "admin-a" {
				t.Fatalf("unexpected creator: %s", creatorID)
			}
			return []domain.Course{{ID: "1", Title: "Go", CreatorID: "admin-a"}}, nil
		},
	}
	h := NewCourseHandler(stub)

	c, rec := newCourseContext(t, http.MethodGet, "/api/v1/admin/course/bulk", "", "admin-a")

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeMessage(t, rec)
	if resp["message"] != "Courses Found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	courses, ok := resp["course"].([]any)
	if !ok || len(courses) != 1 {
		t.Fatalf("unexpected course list: %v", resp["course"])
	}
}

func TestCourseHandler_ListAll_Public(t *testing.T) {
	stub := &stubCourseService{
		listAllFn: func(ctx context.Context) ([]domain.Course, error) {
			return []domain.Course{{ID: "1"}, {ID: "2"}}, nil
		},
	}
	h := NewCourseHandler(stub)

	// No subject id: the public listing needs no token.
	c, rec := newCourseContext(t, http.MethodGet, "/api/v1/courses/course", "", "")

	if err := h.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeMessage(t, rec)
	if _, hasMessage := resp["message"]; hasMessage {
		t.Fatalf("public listing carries no message field: %v", resp)
	}
	courses, ok := resp["course"].([]any)
	if !ok || len(courses) != 2 {
		t.Fatalf("unexpected course list: %v", resp["course"])
	}
}
