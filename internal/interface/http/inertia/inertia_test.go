package inertia

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/wichananm65/portfolio-backend/internal/validation"
)

func newTestApp(r *Renderer) *fiber.App {
	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(r.Middleware())
	app.Get("/page", func(c *fiber.Ctx) error {
		return r.Render(c, "Home", Props{
			"title": "hello",
			"heavy": LazyProp(func() (any, error) { return "computed", nil }),
		})
	})
	app.Post("/items", func(c *fiber.Ctx) error {
		return r.ValidationFailed(c, validation.Errors{"name": "name is a required field"}, "/items/create")
	})
	app.Put("/items/1", func(c *fiber.Ctx) error {
		return r.Done(c, "/page", "Item updated.", fiber.Map{"id": 1})
	})
	return app
}

func decodePage(t *testing.T, res *http.Response) Page {
	t.Helper()
	var p Page
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return p
}

func TestRender_InertiaRequestReturnsJSON(t *testing.T) {
	r := New("1", nil)
	r.Share("site", func(c *fiber.Ctx) (any, error) { return fiber.Map{"name": "Me"}, nil })
	app := newTestApp(r)

	req := httptest.NewRequest("GET", "/page", nil)
	req.Header.Set(HeaderInertia, "true")
	req.Header.Set(HeaderVersion, "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if res.Header.Get(HeaderInertia) != "true" {
		t.Fatalf("missing X-Inertia response header")
	}

	p := decodePage(t, res)
	if p.Component != "Home" || p.URL != "/page" || p.Version != "1" {
		t.Fatalf("unexpected page %+v", p)
	}
	if p.Props["title"] != "hello" {
		t.Fatalf("missing title prop: %+v", p.Props)
	}
	if _, ok := p.Props["site"]; !ok {
		t.Fatalf("shared prop not merged: %+v", p.Props)
	}
	if _, ok := p.Props["heavy"]; ok {
		t.Fatalf("lazy prop must not be sent on full visits")
	}
}

func TestRender_PartialReload(t *testing.T) {
	app := newTestApp(New("1", nil))

	req := httptest.NewRequest("GET", "/page", nil)
	req.Header.Set(HeaderInertia, "true")
	req.Header.Set(HeaderPartialComponent, "Home")
	req.Header.Set(HeaderPartialData, "heavy")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	p := decodePage(t, res)
	if p.Props["heavy"] != "computed" {
		t.Fatalf("lazy prop should be evaluated on request: %+v", p.Props)
	}
	if _, ok := p.Props["title"]; ok {
		t.Fatalf("props outside the partial set must be dropped: %+v", p.Props)
	}
	if _, ok := p.Props["errors"]; !ok {
		t.Fatalf("errors are always included")
	}
}

func TestRender_HTMLShellEmbedsPage(t *testing.T) {
	app := newTestApp(New("7", nil))

	res, err := app.Test(httptest.NewRequest("GET", "/page", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !strings.HasPrefix(res.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("expected html, got %q", res.Header.Get("Content-Type"))
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `data-page="`) || !strings.Contains(string(body), "&#34;component&#34;:&#34;Home&#34;") {
		t.Fatalf("page json not embedded: %s", body)
	}
}

func TestMiddleware_StaleVersionConflicts(t *testing.T) {
	app := newTestApp(New("2", nil))

	req := httptest.NewRequest("GET", "/page", nil)
	req.Header.Set(HeaderInertia, "true")
	req.Header.Set(HeaderVersion, "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
	if !strings.HasSuffix(res.Header.Get(HeaderLocation), "/page") {
		t.Fatalf("expected location header, got %q", res.Header.Get(HeaderLocation))
	}
}

func TestValidationFailed_RedirectsBackWithErrors(t *testing.T) {
	store := session.New()
	r := New("1", store)
	app := newTestApp(r)

	req := httptest.NewRequest("POST", "/items", nil)
	req.Header.Set(HeaderInertia, "true")
	req.Header.Set(fiber.HeaderReferer, "/page")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", res.StatusCode)
	}
	if res.Header.Get("Location") != "/page" {
		t.Fatalf("expected redirect back, got %q", res.Header.Get("Location"))
	}

	// follow the redirect with the session cookie; the errors show up once
	follow := httptest.NewRequest("GET", "/page", nil)
	follow.Header.Set(HeaderInertia, "true")
	for _, ck := range res.Cookies() {
		follow.AddCookie(ck)
	}
	res2, err := app.Test(follow)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	p := decodePage(t, res2)
	errs, _ := p.Props["errors"].(map[string]any)
	if errs["name"] == nil {
		t.Fatalf("expected name error in props, got %+v", p.Props["errors"])
	}

	again := httptest.NewRequest("GET", "/page", nil)
	again.Header.Set(HeaderInertia, "true")
	for _, ck := range res.Cookies() {
		again.AddCookie(ck)
	}
	res3, _ := app.Test(again)
	p3 := decodePage(t, res3)
	if errs, _ := p3.Props["errors"].(map[string]any); len(errs) != 0 {
		t.Fatalf("errors must only be shown once, got %+v", errs)
	}
}

func TestValidationFailed_JSONClient(t *testing.T) {
	app := newTestApp(New("1", nil))

	req := httptest.NewRequest("POST", "/items", nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "name is a required field") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestDone_PutRedirectsWithSeeOther(t *testing.T) {
	app := newTestApp(New("1", session.New()))

	req := httptest.NewRequest("PUT", "/items/1", nil)
	req.Header.Set(HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.StatusCode)
	}

	follow := httptest.NewRequest("GET", "/page", nil)
	follow.Header.Set(HeaderInertia, "true")
	for _, ck := range res.Cookies() {
		follow.AddCookie(ck)
	}
	res2, _ := app.Test(follow)
	p := decodePage(t, res2)
	flash, _ := p.Props["flash"].(map[string]any)
	if flash["success"] != "Item updated." {
		t.Fatalf("expected success flash, got %+v", p.Props["flash"])
	}
}

func TestValidationFailed_IgnoresForeignReferer(t *testing.T) {
	r := New("1", session.New())
	app := newTestApp(r)

	cases := map[string]string{
		"https://evil.example/x":      "/items/create",
		"//evil.example/x":            "/items/create",
		"javascript:alert(1)":         "/items/create",
		"http://example.com/page?x=1": "/page?x=1",
	}
	for referer, want := range cases {
		req := httptest.NewRequest("POST", "/items", nil)
		req.Header.Set(HeaderInertia, "true")
		req.Header.Set(fiber.HeaderReferer, referer)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusFound {
			t.Fatalf("%s: expected 302, got %d", referer, res.StatusCode)
		}
		if got := res.Header.Get("Location"); got != want {
			t.Fatalf("%s: expected redirect to %q, got %q", referer, want, got)
		}
	}
}
