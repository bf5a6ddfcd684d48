// Package inertia implements the server half of the page-props bridge: every
// page is a component name plus JSON props, sent either embedded in an HTML
// shell (first visit) or as JSON (client-side navigation).
package inertia

import (
	"encoding/json"
	"html/template"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const (
	HeaderInertia          = "X-Inertia"
	HeaderVersion          = "X-Inertia-Version"
	HeaderLocation         = "X-Inertia-Location"
	HeaderPartialData      = "X-Inertia-Partial-Data"
	HeaderPartialComponent = "X-Inertia-Partial-Component"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"

	keyFlashSuccess = "_flash_success"
	keyFlashError   = "_flash_error"
	keyErrors       = "_errors"
)

// Props are the data handed to a page component.
type Props = fiber.Map

// LazyProp is evaluated only when a partial reload asks for it by name.
type LazyProp func() (any, error)

// SharedFunc supplies a prop that every page receives.
type SharedFunc func(c *fiber.Ctx) (any, error)

// Page is the object the client-side router consumes.
type Page struct {
	Component string `json:"component"`
	Props     Props  `json:"props"`
	URL       string `json:"url"`
	Version   string `json:"version"`
}

type Renderer struct {
	version  string
	title    string
	sessions *session.Store
	root     *template.Template
	shared   map[string]SharedFunc
}

var rootTemplate = template.Must(template.New("app").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<link rel="stylesheet" href="/build/app.css?v={{ .Version }}">
<script type="module" src="/build/app.js?v={{ .Version }}" defer></script>
</head>
<body>
<div id="app" data-page="{{ .Page }}"></div>
</body>
</html>
`))

type rootData struct {
	Title   string
	Version string
	Page    string
}

// New builds a renderer. sessions may be nil, which disables flash messages
// and redirected validation errors.
func New(version string, sessions *session.Store) *Renderer {
	return &Renderer{
		version:  version,
		title:    "Portfolio",
		sessions: sessions,
		root:     rootTemplate,
		shared:   map[string]SharedFunc{},
	}
}

func (r *Renderer) Version() string { return r.version }

// Share registers a prop included in every page.
func (r *Renderer) Share(key string, fn SharedFunc) {
	r.shared[key] = fn
}

// SetTitle changes the <title> of the HTML shell.
func (r *Renderer) SetTitle(title string) {
	r.title = title
}

// Middleware enforces asset versioning and upgrades redirects that follow
// PUT/PATCH/DELETE requests to 303 so the browser follows them with GET.
func (r *Renderer) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Vary(HeaderInertia)
		if IsInertia(c) && c.Method() == fiber.MethodGet {
			if v := c.Get(HeaderVersion); v != "" && v != r.version {
				c.Set(HeaderLocation, c.BaseURL()+c.OriginalURL())
				return c.SendStatus(fiber.StatusConflict)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusFound && isMutation(c.Method()) {
			c.Status(fiber.StatusSeeOther)
		}
		return nil
	}
}

// Render sends component with props, merged over shared props.
func (r *Renderer) Render(c *fiber.Ctx, component string, props Props) error {
	page, err := r.page(c, component, props)
	if err != nil {
		return err
	}

	if IsInertia(c) {
		c.Set(HeaderInertia, "true")
		return c.JSON(page)
	}

	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return r.root.Execute(c, rootData{Title: r.title, Version: r.version, Page: string(data)})
}

func (r *Renderer) page(c *fiber.Ctx, component string, props Props) (Page, error) {
	all := Props{}
	for key, fn := range r.shared {
		v, err := fn(c)
		if err != nil {
			return Page{}, err
		}
		all[key] = v
	}

	flash, errs, err := r.pullSession(c)
	if err != nil {
		return Page{}, err
	}
	all["flash"] = flash
	all["errors"] = errs

	for key, v := range props {
		all[key] = v
	}

	only := partialKeys(c, component)
	for key, v := range all {
		if only != nil && !only[key] && key != "errors" && key != "flash" {
			delete(all, key)
			continue
		}
		lazy, ok := v.(LazyProp)
		if !ok {
			continue
		}
		if only == nil {
			delete(all, key)
			continue
		}
		resolved, err := lazy()
		if err != nil {
			return Page{}, err
		}
		all[key] = resolved
	}

	return Page{
		Component: component,
		Props:     all,
		URL:       c.OriginalURL(),
		Version:   r.version,
	}, nil
}

func partialKeys(c *fiber.Ctx, component string) map[string]bool {
	if !IsInertia(c) || c.Get(HeaderPartialComponent) != component {
		return nil
	}
	data := c.Get(HeaderPartialData)
	if data == "" {
		return nil
	}
	keys := map[string]bool{}
	for _, k := range strings.Split(data, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}
	return keys
}

// Redirect sends an internal redirect, 303 after mutations.
func (r *Renderer) Redirect(c *fiber.Ctx, location string) error {
	status := fiber.StatusFound
	if isMutation(c.Method()) {
		status = fiber.StatusSeeOther
	}
	return c.Redirect(location, status)
}

// Back redirects to the referring page, or fallback when there is none or it
// points at another host.
func (r *Renderer) Back(c *fiber.Ctx, fallback string) error {
	if ref, ok := localReferer(c); ok {
		return r.Redirect(c, ref)
	}
	return r.Redirect(c, fallback)
}

// localReferer returns the Referer as a path on this host.
func localReferer(c *fiber.Ctx) (string, bool) {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" && u.Host == "" {
		if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "/\\") {
			return "", false
		}
		return ref, true
	}
	if (u.Scheme != "http" && u.Scheme != "https") || !strings.EqualFold(u.Host, c.Hostname()) {
		return "", false
	}
	return u.RequestURI(), true
}

// Location forces a full page visit, e.g. to a non-Inertia URL.
func (r *Renderer) Location(c *fiber.Ctx, url string) error {
	if IsInertia(c) {
		c.Set(HeaderLocation, url)
		return c.SendStatus(fiber.StatusConflict)
	}
	return c.Redirect(url, fiber.StatusFound)
}

// Flash stores a one-shot message shown by the next rendered page.
func (r *Renderer) Flash(c *fiber.Ctx, kind, message string) error {
	key := keyFlashSuccess
	if kind == FlashError {
		key = keyFlashError
	}
	return r.putSession(c, key, message)
}

// Done finishes a successful store/update/destroy. JSON clients get the
// record back; page clients are redirected with a success flash.
func (r *Renderer) Done(c *fiber.Ctx, location, message string, data any) error {
	if WantsJSON(c) {
		status := fiber.StatusOK
		if c.Method() == fiber.MethodPost {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{"message": message, "data": data})
	}
	if err := r.Flash(c, FlashSuccess, message); err != nil {
		return err
	}
	return r.Redirect(c, location)
}

// Fail reports a non-validation failure of a form submission.
func (r *Renderer) Fail(c *fiber.Ctx, status int, location, message string) error {
	if WantsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"message": message})
	}
	if err := r.Flash(c, FlashError, message); err != nil {
		return err
	}
	return r.Redirect(c, location)
}

// ValidationFailed sends field errors back to the form that produced them.
func (r *Renderer) ValidationFailed(c *fiber.Ctx, errs validation.Errors, fallback string) error {
	if WantsJSON(c) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "The given data was invalid.",
			"errors":  errs,
		})
	}
	raw, err := json.Marshal(errs)
	if err != nil {
		return err
	}
	if err := r.putSession(c, keyErrors, string(raw)); err != nil {
		return err
	}
	return r.Back(c, fallback)
}

// Error renders the shared error page with the given status.
func (r *Renderer) Error(c *fiber.Ctx, status int, message string) error {
	if WantsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"message": message})
	}
	c.Status(status)
	return r.Render(c, "Error", Props{"status": status, "message": message})
}

func (r *Renderer) putSession(c *fiber.Ctx, key, value string) error {
	if r.sessions == nil {
		return nil
	}
	sess, err := r.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, value)
	return sess.Save()
}

func (r *Renderer) pullSession(c *fiber.Ctx) (fiber.Map, validation.Errors, error) {
	flash := fiber.Map{FlashSuccess: nil, FlashError: nil}
	errs := validation.Errors{}
	if r.sessions == nil {
		return flash, errs, nil
	}

	sess, err := r.sessions.Get(c)
	if err != nil {
		return nil, nil, err
	}

	dirty := false
	if v, ok := sess.Get(keyFlashSuccess).(string); ok {
		flash[FlashSuccess] = v
		sess.Delete(keyFlashSuccess)
		dirty = true
	}
	if v, ok := sess.Get(keyFlashError).(string); ok {
		flash[FlashError] = v
		sess.Delete(keyFlashError)
		dirty = true
	}
	if v, ok := sess.Get(keyErrors).(string); ok {
		_ = json.Unmarshal([]byte(v), &errs)
		sess.Delete(keyErrors)
		dirty = true
	}

	if dirty {
		if err := sess.Save(); err != nil {
			return nil, nil, err
		}
	}
	return flash, errs, nil
}

// IsInertia reports whether the request comes from the client-side router.
func IsInertia(c *fiber.Ctx) bool {
	return c.Get(HeaderInertia) != ""
}

// WantsJSON reports whether a plain API client sent the request.
func WantsJSON(c *fiber.Ctx) bool {
	return !IsInertia(c) && strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

func isMutation(method string) bool {
	return method == fiber.MethodPut || method == fiber.MethodPatch || method == fiber.MethodDelete
}
