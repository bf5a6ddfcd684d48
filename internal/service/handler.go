package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/services"

type Handler struct {
	service  *Manager
	pages    *inertia.Renderer
	validate *validation.Validator
}

func NewHandler(service *Manager, pages *inertia.Renderer, validate *validation.Validator) *Handler {
	return &Handler{service: service, pages: pages, validate: validate}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/services", h.index)
	router.Get("/services/create", h.create)
	router.Post("/services", h.store)
	router.Get("/services/:id<int>", h.show)
	router.Get("/services/:id<int>/edit", h.edit)
	router.Put("/services/:id<int>", h.update)
	router.Patch("/services/:id<int>", h.update)
	router.Delete("/services/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	services, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Services/Index", inertia.Props{
		"services": services,
		"filters":  fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Services/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}


	created, err := h.service.Create(*form)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Service created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Services/Show", inertia.Props{"service": item})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	item, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Services/Edit", inertia.Props{"service": item})
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


	updated, err := h.service.Update(existing.ID, *form)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Service updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	_, err = h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Service not found.")
	}
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Service deleted.", nil)
}

func (h *Handler) find(c *fiber.Ctx) (Service, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Service{}, fiber.ErrBadRequest
	}
	item, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Service{}, fiber.NewError(fiber.StatusNotFound, "Service not found")
	}
	return item, err
}
