package certification

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/certifications"

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
	router.Get("/certifications", h.index)
	router.Get("/certifications/create", h.create)
	router.Post("/certifications", h.store)
	router.Get("/certifications/:id<int>", h.show)
	router.Get("/certifications/:id<int>/edit", h.edit)
	router.Put("/certifications/:id<int>", h.update)
	router.Patch("/certifications/:id<int>", h.update)
	router.Delete("/certifications/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	certifications, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Certifications/Index", inertia.Props{
		"certifications": certifications,
		"filters":        fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Certifications/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}

	image, err := media.Field{Name: "image", Collection: "certifications", Value: form.Image}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"image": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, image)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Certification created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Certifications/Show", inertia.Props{"certification": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Certifications/Edit", inertia.Props{"certification": item})
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

	image, err := media.Field{
		Name:       "image",
		Collection: "certifications",
		Current:    existing.Image,
		Value:      form.Image,
		Remove:     form.RemoveImage,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"image": err.Error()}, editPath)
	}

	updated, err := h.service.Update(existing.ID, *form, image)
	if err != nil {
		return err
	}
	media.Release(h.uploads, existing.Image, image)
	return h.pages.Done(c, basePath, "Certification updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Certification not found.")
	}
	if err != nil {
		return err
	}
	if deleted.Image != nil {
		_ = h.uploads.Delete(*deleted.Image)
	}
	return h.pages.Done(c, basePath, "Certification deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Certification, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Certification{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Certification{}, fiber.NewError(fiber.StatusNotFound, "Certification not found")
	}
	return item, err
}
