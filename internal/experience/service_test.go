package experience

import (
	"testing"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/validation"
)

func ptrString(s string) *string { return &s }

func TestExperience_Months(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	closed := Experience{StartMonth: "2020-01", EndMonth: ptrString("2021-07")}
	if got := closed.Months(now); got != 18 {
		t.Fatalf("expected 18 months, got %d", got)
	}
	ongoing := Experience{StartMonth: "2024-03", Current: true, EndMonth: ptrString("2024-04")}
	if got := ongoing.Months(now); got != 12 {
		t.Fatalf("ongoing position should count to now, got %d", got)
	}
	if got := (Experience{StartMonth: "bad"}).Months(now); got != 0 {
		t.Fatalf("invalid start should give 0, got %d", got)
	}
}

func TestService_YearsOfExperience(t *testing.T) {
	svc := NewService(NewInMemoryRepository([]Experience{
		{ID: 1, Company: "A", StartMonth: "2019-06", EndMonth: ptrString("2021-01")},
		{ID: 2, Company: "B", StartMonth: "2021-02", Current: true},
	}))
	svc.now = func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }

	years, err := svc.YearsOfExperience()
	if err != nil {
		t.Fatalf("years failed: %v", err)
	}
	if years != 6 {
		t.Fatalf("expected 6 years, got %d", years)
	}

	empty := NewService(NewInMemoryRepository(nil))
	if years, _ := empty.YearsOfExperience(); years != 0 {
		t.Fatalf("no experience should give 0, got %d", years)
	}
}

func TestForm_EmploymentTypeAndRange(t *testing.T) {
	v := validation.New()

	errs := v.Struct(Form{Company: "Acme", Position: "Dev", EmploymentType: "volunteer", StartMonth: "2020-01", Current: true})
	if errs["employmentType"] == "" {
		t.Fatalf("unknown employment type should fail, got %v", errs)
	}

	errs = v.Struct(Form{Company: "Acme", Position: "Dev", EmploymentType: FullTime, StartMonth: "2020-05", EndMonth: "2020-05"})
	if errs != nil {
		t.Fatalf("same start and end month is valid, got %v", errs)
	}
}

func TestService_UpdateKeepsCreatedAt(t *testing.T) {
	repo := NewInMemoryRepository([]Experience{{ID: 1, Company: "A", Position: "Dev", StartMonth: "2020-01", Current: true, CreatedAt: "2020-01-01T00:00:00Z"}})
	svc := NewService(repo)

	e, err := svc.Update(1, Form{Company: "A", Position: "Lead", StartMonth: "2020-01", EndMonth: "2024-12"}, nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if e.CreatedAt != "2020-01-01T00:00:00Z" || e.Current || e.EndMonth == nil || e.Position != "Lead" {
		t.Fatalf("unexpected experience %+v", e)
	}
}
