package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

const testSecret = "test-secret"

// makeApp injects a jwt.Token into locals when the X-User-ID header is
// provided so profile routes can be exercised without signing cookies.
func makeApp(t *testing.T, seed []User) (*fiber.App, *InMemoryRepository, *Tokens) {
	t.Helper()
	repo := NewInMemoryRepository(seed)
	tokens := NewTokens(testSecret, time.Hour)
	pages := inertia.New("1", session.New())
	store := media.NewStore(t.TempDir(), "/uploads", 1<<20, nil)
	h := NewHandler(NewService(repo), tokens, pages, validation.New(), store, false)
	pages.Share("auth", h.Shared)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(pages.Middleware())
	h.RegisterPublicRoutes(app, nil)

	admin := app.Group("/admin", func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	})
	h.RegisterAdminRoutes(admin)
	return app, repo, tokens
}

func seededAdmin(t *testing.T) User {
	t.Helper()
	hashed, err := hashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return User{ID: 7, Email: "me@example.com", Password: hashed, Name: "Jenny"}
}

func TestLogin_SetsCookieAndRedirects(t *testing.T) {
	app, _, tokens := makeApp(t, []User{seededAdmin(t)})

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"ME@example.com","password":"correct horse"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound || res.Header.Get("Location") != "/admin" {
		t.Fatalf("expected redirect to /admin, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	var token string
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			token = ck.Value
			if !ck.HttpOnly {
				t.Fatalf("token cookie must be HttpOnly")
			}
		}
	}
	id, err := tokens.Parse(token)
	if err != nil || id != 7 {
		t.Fatalf("cookie token invalid: id=%d err=%v", id, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _, _ := makeApp(t, []User{seededAdmin(t)})

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"me@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"me@example.com","password":"nope"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set(inertia.HeaderInertia, "true")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusFound || res2.Header.Get("Location") != LoginPath {
		t.Fatalf("page clients go back to the login form, got %d %q", res2.StatusCode, res2.Header.Get("Location"))
	}
}

func TestProfile_RequiresUserAndHidesPassword(t *testing.T) {
	app, _, _ := makeApp(t, []User{seededAdmin(t)})

	res, err := app.Test(httptest.NewRequest("GET", "/admin/profile", nil))
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected unauthorized status, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/admin/profile", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set(inertia.HeaderInertia, "true")
	res2, err := app.Test(req)
	if err != nil {
		t.Fatalf("authorized profile request failed: %v", err)
	}
	b, _ := io.ReadAll(res2.Body)
	body := string(b)
	if !strings.Contains(body, "me@example.com") || !strings.Contains(body, "Admin/Profile/Edit") {
		t.Fatalf("unexpected profile page %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("response body should not expose password field")
	}
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	app, repo, _ := makeApp(t, []User{seededAdmin(t)})

	send := func(payload string) *struct {
		Status int
		Errors map[string]string
	} {
		req := httptest.NewRequest("PATCH", "/admin/profile", strings.NewReader(payload))
		req.Header.Set("X-User-ID", "7")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		out := &struct {
			Status int
			Errors map[string]string
		}{Status: res.StatusCode}
		var body struct {
			Errors map[string]string `json:"errors"`
		}
		_ = json.NewDecoder(res.Body).Decode(&body)
		out.Errors = body.Errors
		return out
	}

	r := send(`{"name":"Jen","email":"me@example.com","currentPassword":"wrong","newPassword":"new secret 1","newPasswordConfirmation":"new secret 1"}`)
	if r.Status != fiber.StatusUnprocessableEntity || r.Errors["currentPassword"] == "" {
		t.Fatalf("wrong current password must fail, got %+v", r)
	}

	r = send(`{"name":"Jen","email":"me@example.com","currentPassword":"correct horse","newPassword":"new secret 1","newPasswordConfirmation":"mismatch"}`)
	if r.Status != fiber.StatusUnprocessableEntity || r.Errors["newPasswordConfirmation"] == "" {
		t.Fatalf("confirmation mismatch must fail, got %+v", r)
	}

	r = send(`{"name":"Jen","email":"me@example.com","currentPassword":"correct horse","newPassword":"new secret 1","newPasswordConfirmation":"new secret 1"}`)
	if r.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %+v", r)
	}

	svc := NewService(repo)
	if _, err := svc.Authenticate("me@example.com", "new secret 1"); err != nil {
		t.Fatalf("new password not stored: %v", err)
	}
	u, _ := repo.GetByID(7)
	if u.Name != "Jen" {
		t.Fatalf("name not updated: %+v", u)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	app, _, _ := makeApp(t, nil)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound || res.Header.Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}
	cleared := false
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName && ck.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("token cookie not cleared")
	}
}
