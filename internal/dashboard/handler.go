// Package dashboard serves the admin landing page.
package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
)

const recentArticles = 5

// Source is what the dashboard reads from.
type Source interface {
	Count() (content.Counts, error)
	RecentlyUpdated(n int) ([]article.Article, error)
}

type contentSource struct {
	services *content.Services
}

func (s contentSource) Count() (content.Counts, error) {
	return s.services.Count()
}

func (s contentSource) RecentlyUpdated(n int) ([]article.Article, error) {
	return s.services.Articles.RecentlyUpdated(n)
}

// FromContent reads counts and articles from the content services.
func FromContent(s *content.Services) Source {
	return contentSource{services: s}
}

type Handler struct {
	source Source
	pages  *inertia.Renderer
}

func NewHandler(source Source, pages *inertia.Renderer) *Handler {
	return &Handler{source: source, pages: pages}
}

// RegisterAdminRoutes mounts the dashboard at the root of the admin group.
func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/", h.show)
}

func (h *Handler) show(c *fiber.Ctx) error {
	counts, err := h.source.Count()
	if err != nil {
		return err
	}
	recent, err := h.source.RecentlyUpdated(recentArticles)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Dashboard", inertia.Props{
		"counts":         counts,
		"recentArticles": recent,
	})
}
