package award

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/awards"

type Handler struct {
	service  *Service
	pages    *inertia.Renderer
	validate *validation.Validator
	uploads  media.Uploader
}

func NewHandler(service *Service, pages *inertia.Renderer, validate *validation.Validator, uploads media.Uploader) *Handler {
	return &Handler{service: service, pages: pages, validate: validate, uploads: uploads}
}

// RegisterAdminRoutes mounts the resource routes on the (authenticated) admin group.
func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/awards", h.index)
	router.Get("/awards/create", h.create)
	router.Post("/awards", h.store)
	router.Get("/awards/:id<int>", h.show)
	router.Get("/awards/:id<int>/edit", h.edit)
	router.Put("/awards/:id<int>", h.update)
	router.Patch("/awards/:id<int>", h.update)
	router.Delete("/awards/:id<int>", h.destroy)
}

func (h *Handler) index(c *fiber.Ctx) error {
	search := c.Query("search")
	awards, err := h.service.List(search)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Awards/Index", inertia.Props{
		"awards":  awards,
		"filters": fiber.Map{"search": search},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	return h.pages.Render(c, "Admin/Awards/Create", inertia.Props{})
}

func (h *Handler) store(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath+"/create")
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath+"/create")
	}

	image, err := media.Field{Name: "image", Collection: "awards", Value: form.Image}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"image": err.Error()}, basePath+"/create")
	}

	created, err := h.service.Create(*form, image)
	if err != nil {
		return err
	}
	return h.pages.Done(c, basePath, "Award created.", created)
}

func (h *Handler) show(c *fiber.Ctx) error {
	a, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Awards/Show", inertia.Props{"award": a})
}

func (h *Handler) edit(c *fiber.Ctx) error {
	a, err := h.find(c)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Awards/Edit", inertia.Props{"award": a})
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
		Collection: "awards",
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
	return h.pages.Done(c, basePath, "Award updated.", updated)
}

func (h *Handler) destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	deleted, err := h.service.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return h.pages.Fail(c, fiber.StatusNotFound, basePath, "Award not found.")
	}
	if err != nil {
		return err
	}
	if deleted.Image != nil {
		_ = h.uploads.Delete(*deleted.Image)
	}
	return h.pages.Done(c, basePath, "Award deleted.", nil)
}

// find loads the award named by the :id param. A missing award becomes a 404
// fiber error, rendered by the app's error handler.
func (h *Handler) find(c *fiber.Ctx) (Award, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return Award{}, fiber.ErrBadRequest
	}
	a, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return Award{}, fiber.NewError(fiber.StatusNotFound, "Award not found")
	}
	return a, err
}
