package testimonial

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/testimonials"

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
	router.Get("/testimonials", h.index)
	router.Get("/testimonials/create", h.create)
	router.Post("/testimonials", h.store)
	router.Get("/testimonials/:id<int>", h.show)
	router.Get("/testimonials/:id<int>/edit", h.edit)
	router.Put("/testimonials/:id<int>", h.update)
	router.Patch("/testimonials/:id<int>", h.update)
	router.Delete("/testimonials/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	testimonials, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Testimonials/Index", inertia.Props{
		"testimonials": testimonials,
		"filters":      fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Testimonials/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}

	avatar, err := media.Field{Name: "avatar", Collection: "testimonials", Value: form.Avatar}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"avatar": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, avatar)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Testimonial created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Testimonials/Show", inertia.Props{"testimonial": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Testimonials/Edit", inertia.Props{"testimonial": item})
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

	avatar, err := media.Field{
		Name:       "avatar",
		Collection: "testimonials",
		Current:    existing.Avatar,
		Value:      form.Avatar,
		Remove:     form.RemoveAvatar,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"avatar": err.Error()}, editPath)
	}

	updated, err := h.service.Update(existing.ID, *form, avatar)
	if err != nil {
		return err
	}
	media.Release(h.uploads, existing.Avatar, avatar)
	return h.pages.Done(c, basePath, "Testimonial updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Testimonial not found.")
	}
	if err != nil {
		return err
	}
	if deleted.Avatar != nil {
		_ = h.uploads.Delete(*deleted.Avatar)
	}
	return h.pages.Done(c, basePath, "Testimonial deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Testimonial, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Testimonial{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Testimonial{}, fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
	}
	return item, err
}
