package project

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

func setupApp(t *testing.T, seed []Project) (*fiber.App, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository(seed)
	pages := inertia.New("1", session.New())
	store := media.NewStore(t.TempDir(), "/uploads", 1<<20, nil)
	h := NewHandler(NewService(repo), pages, validation.New(), store)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(pages.Middleware())
	h.RegisterAdminRoutes(app.Group("/admin"))
	return app, repo
}

func TestStore_FormEncodedTechStack(t *testing.T) {
	app, repo := setupApp(t, nil)

	form := url.Values{}
	form.Set("title", "Portfolio CMS")
	form.Set("description", "This site.")
	form.Set("techStack", "Go, Fiber, React")
	form.Set("year", "2025")
	form.Set("featured", "true")
	req := httptest.NewRequest("POST", "/admin/projects", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", res.StatusCode)
	}

	p, err := repo.GetBySlug("portfolio-cms")
	if err != nil {
		t.Fatalf("project not stored under derived slug: %v", err)
	}
	if len(p.TechStack) != 3 || p.TechStack[2] != "React" || !p.Featured || p.Year != 2025 {
		t.Fatalf("unexpected project %+v", p)
	}
}

func TestUpdate_SlugTakenIsFieldError(t *testing.T) {
	app, _ := setupApp(t, []Project{
		{ID: 1, Title: "One", Slug: "one", Description: "x"},
		{ID: 2, Title: "Two", Slug: "two", Description: "x"},
	})

	req := httptest.NewRequest("PUT", "/admin/projects/2", strings.NewReader(`{"title":"Two","slug":"one","description":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Errors["slug"] != ErrSlugTaken.Error() {
		t.Fatalf("expected slug error, got %v", body.Errors)
	}
}
