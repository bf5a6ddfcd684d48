package experience

import (
	"time"

	"github.com/wichananm65/portfolio-backend/internal/validation"
)

// Employment types accepted by the form.
const (
	FullTime   = "full-time"
	PartTime   = "part-time"
	Contract   = "contract"
	Freelance  = "freelance"
	Internship = "internship"
)

type Experience struct {
	ID             int     `json:"id"`
	Company        string  `json:"company"`
	Position       string  `json:"position"`
	Location       string  `json:"location"`
	EmploymentType string  `json:"employmentType"`
	StartMonth     string  `json:"startMonth"`
	EndMonth       *string `json:"endMonth,omitempty"`
	Current        bool    `json:"current"`
	Description    string  `json:"description"`
	Logo           *string `json:"logo,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// Months returns the length of the position in whole months, counting an
// ongoing one up to now.
func (e Experience) Months(now time.Time) int {
	start, err := time.Parse("2006-01", e.StartMonth)
	if err != nil {
		return 0
	}
	end := now
	if !e.Current && e.EndMonth != nil {
		if t, err := time.Parse("2006-01", *e.EndMonth); err == nil {
			end = t
		}
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

type Form struct {
	Company        string `json:"company" form:"company" validate:"required,max=255"`
	Position       string `json:"position" form:"position" validate:"required,max=255"`
	Location       string `json:"location" form:"location" validate:"max=255"`
	EmploymentType string `json:"employmentType" form:"employmentType" validate:"omitempty,oneof=full-time part-time contract freelance internship"`
	StartMonth     string `json:"startMonth" form:"startMonth" validate:"required,datetime=2006-01"`
	EndMonth       string `json:"endMonth" form:"endMonth" validate:"omitempty,datetime=2006-01"`
	Current        bool   `json:"current" form:"current"`
	Description    string `json:"description" form:"description" validate:"max=10000"`
	Logo           string `json:"logo" form:"logo" validate:"omitempty,max=2048"`
	RemoveLogo     bool   `json:"removeLogo" form:"removeLogo"`
}

func (f Form) Spans() []validation.Span {
	end := f.EndMonth
	if f.Current {
		end = ""
	}
	return []validation.Span{{
		StartField: "startMonth",
		EndField:   "endMonth",
		Start:      f.StartMonth,
		End:        end,
		Open:       f.Current,
	}}
}
