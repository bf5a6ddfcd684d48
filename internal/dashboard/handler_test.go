package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
)

func TestShow_CountsAndRecentArticles(t *testing.T) {
	s := content.NewMemory()
	for i := 0; i < 7; i++ {
		if _, err := s.Articles.Create(article.Form{Title: fmt.Sprintf("Post %d", i), Body: "b"}, nil); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	app := fiber.New(fiber.Config{Immutable: true})
	NewHandler(FromContent(s), inertia.New("1", nil)).RegisterAdminRoutes(app.Group("/admin"))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var page inertia.Page
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Component != "Admin/Dashboard" {
		t.Fatalf("unexpected component %q", page.Component)
	}
	counts, _ := page.Props["counts"].(map[string]any)
	if counts["articles"] != float64(7) || counts["projects"] != float64(0) {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if recent, _ := page.Props["recentArticles"].([]any); len(recent) != 5 {
		t.Fatalf("expected 5 recent articles, got %d", len(recent))
	}
}

type failingSource struct{}

func (failingSource) Count() (content.Counts, error) { return nil, errors.New("db down") }
func (failingSource) RecentlyUpdated(int) ([]article.Article, error) {
	return nil, nil
}

func TestShow_PropagatesStoreErrors(t *testing.T) {
	app := fiber.New(fiber.Config{Immutable: true})
	NewHandler(failingSource{}, inertia.New("1", nil)).RegisterAdminRoutes(app.Group("/admin"))

	res, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
}
