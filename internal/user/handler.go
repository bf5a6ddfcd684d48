package user

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const (
	profilePath  = "/admin/profile"
	rememberFor  = 30 * 24 * time.Hour
	afterLogin   = "/admin"
	afterLogout  = "/"
	badLoginText = "These credentials do not match our records."
)

type Handler struct {
	service      *Service
	tokens       *Tokens
	pages        *inertia.Renderer
	validate     *validation.Validator
	uploads      media.Uploader
	secureCookie bool
}

func NewHandler(service *Service, tokens *Tokens, pages *inertia.Renderer, validate *validation.Validator, uploads media.Uploader, secureCookie bool) *Handler {
	return &Handler{
		service:      service,
		tokens:       tokens,
		pages:        pages,
		validate:     validate,
		uploads:      uploads,
		secureCookie: secureCookie,
	}
}

// RegisterPublicRoutes mounts the login and logout endpoints. limit, when
// non-nil, throttles login attempts.
func (h *Handler) RegisterPublicRoutes(router fiber.Router, limit fiber.Handler) {
	router.Get(LoginPath, h.loginPage)
	if limit != nil {
		router.Post(LoginPath, limit, h.login)
	} else {
		router.Post(LoginPath, h.login)
	}
	router.Post("/logout", h.logout)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/profile", h.getProfile)
	router.Put("/profile", h.updateProfile)
	router.Patch("/profile", h.updateProfile)
}

// Shared is the "auth" prop: the signed in user or nil.
func (h *Handler) Shared(c *fiber.Ctx) (any, error) {
	id, err := GetUserIDFromCtx(c)
	if err != nil {
		id, err = h.tokens.Parse(c.Cookies(CookieName))
	}
	if err != nil {
		return fiber.Map{"user": nil}, nil
	}
	user, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return fiber.Map{"user": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return fiber.Map{"user": sanitizeUser(user)}, nil
}

func (h *Handler) loginPage(c *fiber.Ctx) error {
	if _, err := h.tokens.Parse(c.Cookies(CookieName)); err == nil {
		return h.pages.Redirect(c, afterLogin)
	}
	return h.pages.Render(c, "Auth/Login", inertia.Props{})
}

func (h *Handler) login(c *fiber.Ctx) error {
	form := new(LoginForm)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"email": err.Error()}, LoginPath)
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, LoginPath)
	}

	user, err := h.service.Authenticate(form.Email, form.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		if inertia.WantsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": badLoginText})
		}
		return h.pages.ValidationFailed(c, validation.Errors{"email": badLoginText}, LoginPath)
	}
	if err != nil {
		return err
	}

	ttl := time.Duration(0)
	if form.Remember {
		ttl = rememberFor
	}
	signed, expires, err := h.tokens.Sign(user, ttl)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if inertia.WantsJSON(c) {
		return c.JSON(fiber.Map{
			"message": "Login successful",
			"user":    sanitizeUser(user),
			"token":   signed,
		})
	}
	if err := h.pages.Flash(c, inertia.FlashSuccess, "Welcome back, "+user.Name+"."); err != nil {
		return err
	}
	return h.pages.Redirect(c, afterLogin)
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return h.pages.Done(c, afterLogout, "You have been logged out.", nil)
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return err
	}
	user, err := h.service.GetByID(userID)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	return h.pages.Render(c, "Admin/Profile/Edit", inertia.Props{"user": sanitizeUser(user)})
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return err
	}
	existing, err := h.service.GetByID(userID)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}

	form := new(ProfileForm)
	if err := c.BodyParser(form); err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"form": err.Error()}, profilePath)
	}
	if errs := h.validate.Struct(form); errs != nil {
		return h.pages.ValidationFailed(c, errs, profilePath)
	}
	if err := h.service.CheckProfile(userID, *form); err != nil {
		return h.profileFailed(c, err)
	}

	avatar, err := media.Field{
		Name:       "avatarPic",
		Collection: "avatars",
		Current:    existing.AvatarPic,
		Value:      form.AvatarPic,
		Remove:     form.RemoveAvatarPic,
	}.Resolve(c, h.uploads)
	if err != nil {
		return h.pages.ValidationFailed(c, validation.Errors{"avatarPic": err.Error()}, profilePath)
	}

	updated, err := h.service.UpdateProfile(userID, *form, avatar)
	if err != nil {
		return h.profileFailed(c, err)
	}
	media.Release(h.uploads, existing.AvatarPic, avatar)
	return h.pages.Done(c, profilePath, "Profile updated.", sanitizeUser(updated))
}

func (h *Handler) profileFailed(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return h.pages.ValidationFailed(c, validation.Errors{"currentPassword": "The current password is incorrect."}, profilePath)
	case errors.Is(err, ErrEmailExists):
		return h.pages.ValidationFailed(c, validation.Errors{"email": "The email has already been taken."}, profilePath)
	}
	return err
}
