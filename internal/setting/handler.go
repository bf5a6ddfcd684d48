package setting

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const basePath = "/admin/settings"

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
	router.Get("/settings", h.edit)
	router.Put("/settings", h.update)
	router.Patch("/settings", h.update)
}

func (h *Handler) edit(c *fiber.Ctx) error {
	st, err := h.service.Get()
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Settings/Edit", inertia.Props{"settings": st})
}

func (h *Handler) update(c *fiber.Ctx) error {
	current, err := h.service.Get()
	if err != nil {
		return err
	}

	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, basePath)
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, basePath)
	}

	logo, err := media.Field{
		Name:       "logo",
		Collection: "settings",
		Current:    current.Logo,
		Value:      form.Logo,
		Remove:     form.RemoveLogo,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"logo": err.Error()}, basePath)
	}
	resume, err := media.Field{
		Name:       "resume",
		Collection: "settings",
		Current:    current.ResumeURL,
		Value:      form.ResumeURL,
		Remove:     form.RemoveResume,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"resume": err.Error()}, basePath)
	}

	saved, err := h.service.Update(*form, logo, resume)
	if err != nil {
		return err
	}
	media.Release(h.uploads, current.Logo, logo)
	media.Release(h.uploads, current.ResumeURL, resume)
	return h.pages.Done(c, basePath, "Settings saved.", saved)
}
