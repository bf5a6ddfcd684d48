package award

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func ptrString(s string) *string { return &s }

func setupApp(t *testing.T, seed []Award) (*fiber.App, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository(seed)
	pages := inertia.New("1", session.New())
	store := media.NewStore(t.TempDir(), "/uploads", 1<<20, nil)
	h := NewHandler(NewService(repo), pages, validation.New(), store)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(pages.Middleware())
	h.RegisterAdminRoutes(app.Group("/admin"))
	return app, repo
}

func TestIndex_FiltersBySearch(t *testing.T) {
	app, _ := setupApp(t, []Award{
		{ID: 1, Name: "Best Portfolio", Issuer: "Awwwards", Date: "2023-04-01"},
		{ID: 2, Name: "Hackathon Winner", Issuer: "DevFest", Date: "2024-01-10"},
	})

	req := httptest.NewRequest("GET", "/admin/awards?search=hackathon", nil)
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var page struct {
		Component string `json:"component"`
		Props     struct {
			Awards []Award `json:"awards"`
		} `json:"props"`
	}
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Component != "Admin/Awards/Index" {
		t.Fatalf("unexpected component %q", page.Component)
	}
	if len(page.Props.Awards) != 1 || page.Props.Awards[0].ID != 2 {
		t.Fatalf("unexpected awards %+v", page.Props.Awards)
	}
}

func TestStore_ValidationErrors(t *testing.T) {
	app, repo := setupApp(t, nil)

	// page client: redirected back to the form
	req := httptest.NewRequest("POST", "/admin/awards", strings.NewReader(`{"issuer":"x","date":"2024-13-01"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound || res.Header.Get("Location") != "/admin/awards/create" {
		t.Fatalf("expected redirect back to create, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	// json client: 422 with field errors
	req2 := httptest.NewRequest("POST", "/admin/awards", strings.NewReader(`{"issuer":"x","date":"2024-13-01"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Accept", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res2.StatusCode)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(res2.Body).Decode(&body)
	if body.Errors["name"] == "" || body.Errors["date"] == "" {
		t.Fatalf("expected name and date errors, got %v", body.Errors)
	}

	if all, _ := repo.List(); len(all) != 0 {
		t.Fatalf("invalid award must not be stored")
	}
}

func TestStore_CreatesAward(t *testing.T) {
	app, repo := setupApp(t, nil)

	req := httptest.NewRequest("POST", "/admin/awards", strings.NewReader(`{"name":"Best Talk","issuer":"GopherCon","date":"2024-06-01","url":"https://gophercon.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, b)
	}

	all, _ := repo.List()
	if len(all) != 1 || all[0].Name != "Best Talk" || all[0].URL == nil || all[0].CreatedAt == "" {
		t.Fatalf("award not stored as expected: %+v", all)
	}
}

func TestUpdate_MultipartWithImage(t *testing.T) {
	app, repo := setupApp(t, []Award{{ID: 3, Name: "Old", Issuer: "Org", Date: "2020-01-01", CreatedAt: "2020-01-01T00:00:00Z"}})

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	w.WriteField("name", "New")
	w.WriteField("issuer", "Org")
	w.WriteField("date", "2021-02-03")
	part, _ := w.CreateFormFile("image", "badge.png")
	part.Write(pngBytes)
	w.Close()

	req := httptest.NewRequest("PUT", "/admin/awards/3", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.StatusCode)
	}
	if res.Header.Get("Location") != "/admin/awards" {
		t.Fatalf("expected redirect to index, got %q", res.Header.Get("Location"))
	}

	a, _ := repo.GetByID(3)
	if a.Name != "New" || a.CreatedAt != "2020-01-01T00:00:00Z" {
		t.Fatalf("award not updated: %+v", a)
	}
	if a.Image == nil || !strings.HasPrefix(*a.Image, "/uploads/awards/") {
		t.Fatalf("image not stored: %+v", a.Image)
	}
}

func TestUpdate_RemoveImage(t *testing.T) {
	app, repo := setupApp(t, []Award{{ID: 4, Name: "A", Issuer: "B", Date: "2020-01-01", Image: ptrString("https://cdn.example.com/a.png")}})

	req := httptest.NewRequest("PATCH", "/admin/awards/4", strings.NewReader(`{"name":"A","issuer":"B","date":"2020-01-01","removeImage":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	a, _ := repo.GetByID(4)
	if a.Image != nil {
		t.Fatalf("image should be cleared, got %v", *a.Image)
	}
}

func TestShow_NotFound(t *testing.T) {
	app, _ := setupApp(t, nil)

	res, err := app.Test(httptest.NewRequest("GET", "/admin/awards/42", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestDestroy(t *testing.T) {
	app, repo := setupApp(t, []Award{{ID: 5, Name: "Gone", Issuer: "X", Date: "2020-01-01"}})

	req := httptest.NewRequest("DELETE", "/admin/awards/5", nil)
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.StatusCode)
	}
	if _, err := repo.GetByID(5); err != ErrNotFound {
		t.Fatalf("award should be deleted")
	}

	req2 := httptest.NewRequest("DELETE", "/admin/awards/5", nil)
	req2.Header.Set("Accept", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing award, got %d", res2.StatusCode)
	}
}

func TestStore_FormEncodedValuesSurviveLaterRequests(t *testing.T) {
	app, repo := setupApp(t, nil)

	post := func(name string) {
		t.Helper()
		req := httptest.NewRequest("POST", "/admin/awards", strings.NewReader("name="+name+"&issuer=Org&date=2024-01-01"))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		req.Header.Set("Accept", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected 201, got %d", res.StatusCode)
		}
	}

	post("FirstAward")
	for i := 0; i < 20; i++ {
		post("ZZZZZZZZZZ")
	}

	first, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.Name != "FirstAward" || first.Issuer != "Org" {
		t.Fatalf("first award was overwritten: %+v", first)
	}
}

type failingUpdates struct {
	*InMemoryRepository
}

func (failingUpdates) Update(int, Award) (Award, error) {
	return Award{}, errors.New("database is gone")
}

type recordingUploads struct {
	deleted []string
}

func (u *recordingUploads) Save(*multipart.FileHeader, string) (media.File, error) {
	return media.File{URL: "/uploads/awards/new.png"}, nil
}

func (u *recordingUploads) Delete(url string) error {
	u.deleted = append(u.deleted, url)
	return nil
}

func TestUpdate_KeepsOldImageWhenSaveFails(t *testing.T) {
	repo := failingUpdates{NewInMemoryRepository([]Award{{ID: 5, Name: "A", Issuer: "B", Date: "2020-01-01", Image: ptrString("/uploads/awards/old.png")}})}
	uploads := &recordingUploads{}
	pages := inertia.New("1", session.New())
	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(pages.Middleware())
	NewHandler(NewService(repo), pages, validation.New(), uploads).RegisterAdminRoutes(app.Group("/admin"))

	for _, body := range []string{
		`{"name":"A","issuer":"B","date":"2020-01-01","removeImage":true}`,
		`{"name":"A","issuer":"B","date":"2020-01-01","image":"https://cdn.example.com/b.png"}`,
	} {
		req := httptest.NewRequest("PUT", "/admin/awards/5", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", res.StatusCode)
		}
	}
	if len(uploads.deleted) != 0 {
		t.Fatalf("old image must stay while the record still points at it, deleted %v", uploads.deleted)
	}
}

func TestUpdate_ReleasesReplacedImage(t *testing.T) {
	repo := NewInMemoryRepository([]Award{{ID: 6, Name: "A", Issuer: "B", Date: "2020-01-01", Image: ptrString("/uploads/awards/old.png")}})
	uploads := &recordingUploads{}
	pages := inertia.New("1", session.New())
	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(pages.Middleware())
	NewHandler(NewService(repo), pages, validation.New(), uploads).RegisterAdminRoutes(app.Group("/admin"))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	w.WriteField("name", "A")
	w.WriteField("issuer", "B")
	w.WriteField("date", "2020-01-01")
	part, _ := w.CreateFormFile("image", "badge.png")
	part.Write(pngBytes)
	w.Close()

	req := httptest.NewRequest("PUT", "/admin/awards/6", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	a, _ := repo.GetByID(6)
	if a.Image == nil || *a.Image != "/uploads/awards/new.png" {
		t.Fatalf("image not replaced: %v", a.Image)
	}
	if len(uploads.deleted) != 1 || uploads.deleted[0] != "/uploads/awards/old.png" {
		t.Fatalf("expected the old image to be deleted, got %v", uploads.deleted)
	}
}
