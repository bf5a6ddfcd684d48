// Package site serves the public pages of the portfolio.
package site

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/interface/presenter"
	"github.com/wichananm65/portfolio-backend/internal/listing"
	"github.com/wichananm65/portfolio-backend/internal/project"
)

const (
	latestArticles   = 3
	featuredProjects = 6
)

type Handler struct {
	content  *content.Services
	pages    *inertia.Renderer
	articles *presenter.ArticlePresenter
	projects *presenter.ProjectPresenter
}

func NewHandler(s *content.Services, pages *inertia.Renderer, articles *presenter.ArticlePresenter, projects *presenter.ProjectPresenter) *Handler {
	return &Handler{content: s, pages: pages, articles: articles, projects: projects}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.home)
	router.Get("/articles", h.articleIndex)
	router.Get("/articles/:slug", h.articleShow)
	router.Get("/services", h.services)
	router.Get("/projects", h.projectIndex)
	router.Get("/projects/:slug", h.projectShow)
}

func (h *Handler) home(c *fiber.Ctx) error {
	s := h.content
	services, err := s.Services.List("")
	if err != nil {
		return err
	}
	testimonials, err := s.Testimonials.List("")
	if err != nil {
		return err
	}
	experiences, err := s.Experiences.List("")
	if err != nil {
		return err
	}
	educations, err := s.Education.List("")
	if err != nil {
		return err
	}
	awards, err := s.Awards.List("")
	if err != nil {
		return err
	}
	certifications, err := s.Certifications.List("")
	if err != nil {
		return err
	}
	latest, err := s.Articles.Latest(latestArticles)
	if err != nil {
		return err
	}
	featured, err := s.Projects.Featured(featuredProjects)
	if err != nil {
		return err
	}
	projects, err := h.projects.ToList(featured)
	if err != nil {
		return err
	}
	stats, err := collectStats(s)
	if err != nil {
		return err
	}

	return h.pages.Render(c, "Home", inertia.Props{
		"services":       services,
		"testimonials":   testimonials,
		"experiences":    experiences,
		"educations":     educations,
		"awards":         awards,
		"certifications": certifications,
		"articles":       h.articles.ToList(latest),
		"projects":       projects,
		"stats":          stats,
	})
}

func (h *Handler) articleIndex(c *fiber.Ctx) error {
	search := c.Query("search")
	tag := c.Query("tag")
	page, err := h.content.Articles.Published(search, tag, c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	tags, err := h.content.Articles.Tags()
	if err != nil {
		return err
	}

	return h.pages.Render(c, "Articles/Index", inertia.Props{
		"articles": listing.Page[presenter.ArticleCard]{
			Data:        h.articles.ToList(page.Data),
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
			HasMore:     page.HasMore,
		},
		"tags":    tags,
		"filters": fiber.Map{"search": search, "tag": tag},
	})
}

func (h *Handler) articleShow(c *fiber.Ctx) error {
	a, err := h.content.Articles.PublishedBySlug(c.Params("slug"))
	if errors.Is(err, article.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}
	if err != nil {
		return err
	}
	resp, err := h.articles.ToResponse(a)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Articles/Show", inertia.Props{"article": resp})
}

func (h *Handler) services(c *fiber.Ctx) error {
	services, err := h.content.Services.List("")
	if err != nil {
		return err
	}
	testimonials, err := h.content.Testimonials.List("")
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Services", inertia.Props{
		"services":     services,
		"testimonials": testimonials,
	})
}

func (h *Handler) projectIndex(c *fiber.Ctx) error {
	tech := c.Query("tech")
	list, err := h.content.Projects.Public(tech)
	if err != nil {
		return err
	}
	projects, err := h.projects.ToList(list)
	if err != nil {
		return err
	}
	technologies, err := h.content.Projects.Technologies()
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Projects/Index", inertia.Props{
		"projects":     projects,
		"technologies": technologies,
		"filters":      fiber.Map{"tech": tech},
	})
}

func (h *Handler) projectShow(c *fiber.Ctx) error {
	p, err := h.content.Projects.GetBySlug(c.Params("slug"))
	if errors.Is(err, project.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	if err != nil {
		return err
	}
	resp, err := h.projects.ToResponse(p)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Projects/Show", inertia.Props{"project": resp})
}
