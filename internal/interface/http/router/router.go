// Package router assembles the fiber application: middleware, shared page
// props, public pages and the guarded admin area.
package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/award"
	"github.com/wichananm65/portfolio-backend/internal/certification"
	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/dashboard"
	"github.com/wichananm65/portfolio-backend/internal/education"
	"github.com/wichananm65/portfolio-backend/internal/experience"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/config"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/logging"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/handler"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/interface/presenter"
	"github.com/wichananm65/portfolio-backend/internal/markdown"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/project"
	"github.com/wichananm65/portfolio-backend/internal/service"
	"github.com/wichananm65/portfolio-backend/internal/setting"
	"github.com/wichananm65/portfolio-backend/internal/site"
	"github.com/wichananm65/portfolio-backend/internal/testimonial"
	"github.com/wichananm65/portfolio-backend/internal/user"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const (
	tokenTTL      = 12 * time.Hour
	loginAttempts = 5
	methodField   = "_method"
	methodHeader  = "X-HTTP-Method-Override"
)

// adminRoutes is implemented by every handler mounted under /admin.
type adminRoutes interface {
	RegisterAdminRoutes(router fiber.Router)
}

// New builds the application over the given content services.
func New(cfg config.Config, logger *zap.Logger, s *content.Services, uploads *media.Store) *fiber.App {
	sessions := session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   !cfg.IsDevelopment(),
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
	pages := inertia.New(cfg.AssetVersion, sessions)
	validate := validation.New()
	tokens := user.NewTokens(cfg.JWTSecret, tokenTTL)
	md := markdown.New()

	app := fiber.New(fiber.Config{
		AppName:      "portfolio",
		Immutable:    true,
		BodyLimit:    (cfg.MaxUploadMB + 1) * 1024 * 1024,
		ErrorHandler: errorHandler(logger, pages),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	app.Use(logging.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Inertia, X-Inertia-Version, X-Inertia-Partial-Data, X-Inertia-Partial-Component, X-Requested-With",
		ExposeHeaders:    "X-Inertia, X-Inertia-Location",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(methodOverride())
	app.Use(pages.Middleware())

	app.Static(cfg.UploadURL, cfg.UploadDir, fiber.Static{
		MaxAge: 3600,
		ModifyResponse: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
			c.Set(fiber.HeaderContentSecurityPolicy, "default-src 'none'; img-src 'self'; style-src 'unsafe-inline'; sandbox")
			return nil
		},
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	users := user.NewHandler(s.Users, tokens, pages, validate, uploads, !cfg.IsDevelopment())
	pages.Share("site", s.Settings.Shared)
	pages.Share("auth", users.Shared)

	users.RegisterPublicRoutes(app, limiter.New(limiter.Config{
		Max:        loginAttempts,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many login attempts. Try again in a minute.")
		},
	}))
	site.NewHandler(s, pages, presenter.NewArticlePresenter(md), presenter.NewProjectPresenter(md)).RegisterRoutes(app)

	admin := app.Group("/admin", tokens.Middleware(pages))
	for _, h := range []adminRoutes{
		dashboard.NewHandler(dashboard.FromContent(s), pages),
		users,
		article.NewHandler(s.Articles, pages, validate, uploads),
		award.NewHandler(s.Awards, pages, validate, uploads),
		certification.NewHandler(s.Certifications, pages, validate, uploads),
		education.NewHandler(s.Education, pages, validate, uploads),
		experience.NewHandler(s.Experiences, pages, validate, uploads),
		service.NewHandler(s.Services, pages, validate),
		testimonial.NewHandler(s.Testimonials, pages, validate, uploads),
		project.NewHandler(s.Projects, pages, validate, uploads),
		setting.NewHandler(s.Settings, pages, validate, uploads),
		handler.NewUploadHandler(uploads),
	} {
		h.RegisterAdminRoutes(admin)
	}

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})
	return app
}

// methodOverride lets HTML forms, which can only POST, reach PUT, PATCH and
// DELETE routes through a _method field or header.
func methodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}
		override := c.Get(methodHeader)
		if override == "" && isForm(c) {
			override = c.FormValue(methodField)
		}
		switch m := strings.ToUpper(override); m {
		case fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
			c.Method(m)
		}
		return c.Next()
	}
}

func isForm(c *fiber.Ctx) bool {
	ct := c.Get(fiber.HeaderContentType)
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func errorHandler(logger *zap.Logger, pages *inertia.Renderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong."

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		if rerr := pages.Error(c, code, message); rerr != nil {
			logger.Error("render error page", zap.Error(rerr))
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
