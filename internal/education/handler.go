package education

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/educations"

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
	router.Get("/educations", h.index)
	router.Get("/educations/create", h.create)
	router.Post("/educations", h.store)
	router.Get("/educations/:id<int>", h.show)
	router.Get("/educations/:id<int>/edit", h.edit)
	router.Put("/educations/:id<int>", h.update)
	router.Patch("/educations/:id<int>", h.update)
	router.Delete("/educations/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	educations, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Educations/Index", inertia.Props{
		"educations": educations,
		"filters":    fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Educations/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}

	logo, err := media.Field{Name: "logo", Collection: "educations", Value: form.Logo}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"logo": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, logo)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Education created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Educations/Show", inertia.Props{"education": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Educations/Edit", inertia.Props{"education": item})
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

	logo, err := media.Field{
		Name:       "logo",
		Collection: "educations",
		Current:    existing.Logo,
		Value:      form.Logo,
		Remove:     form.RemoveLogo,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"logo": err.Error()}, editPath)
	}

	updated, err := h.service.Update(existing.ID, *form, logo)
	if err != nil {
		return err
	}
	media.Release(h.uploads, existing.Logo, logo)
	return h.pages.Done(c, basePath, "Education updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Education not found.")
	}
	if err != nil {
		return err
	}
	if deleted.Logo != nil {
		_ = h.uploads.Delete(*deleted.Logo)
	}
	return h.pages.Done(c, basePath, "Education deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Education, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Education{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Education{}, fiber.NewError(fiber.StatusNotFound, "Education not found")
	}
	return item, err
}
