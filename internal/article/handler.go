package article

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/articles"

type Handler struct {
	service  *Service
	pages    *inertia.Renderer
	validate *validation.Validator
	uploads  media.Uploader
}

func NewHandler(service *Service, pages *inertia.Renderer, validate *validation.Validator, uploads media.Uploader) *Handler {
	return &Handler{service: service, pages: pages, validate: validate, uploads: uploads}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/articles", h.index)
	router.Get("/articles/create", h.create)
	router.Post("/articles", h.store)
	router.Get("/articles/:id<int>", h.show)
	router.Get("/articles/:id<int>/edit", h.edit)
	router.Put("/articles/:id<int>", h.update)
	router.Patch("/articles/:id<int>", h.update)
	router.Delete("/articles/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status")
	articles, err := h.service.List(search, status)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Articles/Index", inertia.Props{
		"articles": articles,
		"filters":  fiber.Map{"search": search, "status": status},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Articles/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}
	if err := h.service.CheckSlug(form.Slug, 0); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"slug": err.Error()}, basePath+"/create")
	}

	coverImage, err := media.Field{Name: "coverImage", Collection: "articles", Value: form.CoverImage}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"coverImage": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, coverImage)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Article created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Articles/Show", inertia.Props{"article": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Articles/Edit", inertia.Props{"article": item})
}

func (h *Handler) update(c *fiber.Ctx) error {
	existing, err := h.find(c)
	if err != nil {
		return err
	}
	editPath := c.Path() + "/edit"

	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, editPath)
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, editPath)
	}
	if err := h.service.CheckSlug(form.Slug, existing.ID); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"slug": err.Error()}, editPath)
	}

	coverImage, err := media.Field{
		Name:       "coverImage",
		Collection: "articles",
		Current:    existing.CoverImage,
		Value:      form.CoverImage,
		Remove:     form.RemoveCoverImage,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"coverImage": err.Error()}, editPath)
	}

	updated, err := h.service.Update(existing.ID, *form, coverImage)
	if err != nil {
		return err
	}
	media.Release(h.uploads, existing.CoverImage, coverImage)
	return h.pages.Done(c, basePath, "Article updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Article not found.")
	}
	if err != nil {
		return err
	}
	if deleted.CoverImage != nil {
		_ = h.uploads.Delete(*deleted.CoverImage)
	}
	return h.pages.Done(c, basePath, "Article deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Article, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Article{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Article{}, fiber.NewError(fiber.StatusNotFound, "Article not found")
	}
	return item, err
}
