package education

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/wichananm65/portfolio-backend/internal/interface/http/inertia"
	"github.com/wichananm65/portfolio-backend/internal/media"
	"github.com/wichananm65/portfolio-backend/internal/validation"
)

func setupApp(t *testing.T, seed []Education) (*fiber.App, *InMemoryRepository) {
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

func postJSON(app *fiber.App, method, path, body string) (int, map[string]string) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	res, err := app.Test(req)
	if err != nil {
		return 0, nil
	}
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res.StatusCode, out.Errors
}

func TestStore_MonthRangeRules(t *testing.T) {
	app, repo := setupApp(t, nil)

	status, errs := postJSON(app, "POST", "/admin/educations", `{"institution":"MIT","degree":"BSc","startMonth":"2018-09"}`)
	if status != fiber.StatusUnprocessableEntity || errs["endMonth"] == "" {
		t.Fatalf("end month must be required when not current, got %d %v", status, errs)
	}

	status, errs = postJSON(app, "POST", "/admin/educations", `{"institution":"MIT","degree":"BSc","startMonth":"2018-09","endMonth":"2017-06"}`)
	if status != fiber.StatusUnprocessableEntity || errs["endMonth"] == "" {
		t.Fatalf("end before start must fail, got %d %v", status, errs)
	}

	status, errs = postJSON(app, "POST", "/admin/educations", `{"institution":"MIT","degree":"MSc","startMonth":"2022-09","endMonth":"2021-01","current":true}`)
	if status != fiber.StatusCreated {
		t.Fatalf("current entry should be accepted, got %d %v", status, errs)
	}
	all, _ := repo.List()
	if len(all) != 1 || all[0].EndMonth != nil || !all[0].Current {
		t.Fatalf("current entry must not keep an end month: %+v", all)
	}
}

func TestUpdate_FormEncoded(t *testing.T) {
	app, repo := setupApp(t, []Education{{ID: 2, Institution: "Old", Degree: "BA", StartMonth: "2010-01", EndMonth: ptrString("2013-12")}})

	form := url.Values{}
	form.Set("institution", "Chulalongkorn University")
	form.Set("degree", "BEng")
	form.Set("startMonth", "2012-06")
	form.Set("endMonth", "2016-05")
	req := httptest.NewRequest("PUT", "/admin/educations/2", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(inertia.HeaderInertia, "true")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.StatusCode)
	}
	e, _ := repo.GetByID(2)
	if e.Institution != "Chulalongkorn University" || e.EndMonth == nil || *e.EndMonth != "2016-05" {
		t.Fatalf("education not updated: %+v", e)
	}
}

func TestList_CurrentFirst(t *testing.T) {
	svc := NewService(NewInMemoryRepository([]Education{
		{ID: 1, Institution: "A", StartMonth: "2020-01", EndMonth: ptrString("2021-01")},
		{ID: 2, Institution: "B", StartMonth: "2015-01", Current: true},
		{ID: 3, Institution: "C", StartMonth: "2022-01", EndMonth: ptrString("2023-01")},
	}))
	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list[0].ID != 2 || list[1].ID != 3 || list[2].ID != 1 {
		t.Fatalf("unexpected order %+v", list)
	}
}

func ptrString(s string) *string { return &s }
