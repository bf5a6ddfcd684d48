package experience

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/experiences"

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
	router.Get("/experiences", h.index)
	router.Get("/experiences/create", h.create)
	router.Post("/experiences", h.store)
	router.Get("/experiences/:id<int>", h.show)
	router.Get("/experiences/:id<int>/edit", h.edit)
	router.Put("/experiences/:id<int>", h.update)
	router.Patch("/experiences/:id<int>", h.update)
	router.Delete("/experiences/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	experiences, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Experiences/Index", inertia.Props{
		"experiences": experiences,
		"filters":     fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Experiences/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}

	logo, err := media.Field{Name: "logo", Collection: "experiences", Value: form.Logo}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"logo": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, logo)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Experience created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Experiences/Show", inertia.Props{"experience": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Experiences/Edit", inertia.Props{"experience": item})
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
		Collection: "experiences",
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
	return h.pages.Done(c, basePath, "Experience updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Experience not found.")
	}
	if err != nil {
		return err
	}
	if deleted.Logo != nil {
		_ = h.uploads.Delete(*deleted.Logo)
	}
	return h.pages.Done(c, basePath, "Experience deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Experience, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Experience{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Experience{}, fiber.NewError(fiber.StatusNotFound, "Experience not found")
	}
	return item, err
}
