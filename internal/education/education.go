package education

import "github.com/wichananm65/portfolio-backend/internal/validation"

// Education is a degree or course listed on the home page timeline.
type Education struct {
	ID           int     `json:"id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy"`
	StartMonth   string  `json:"startMonth"`
	EndMonth     *string `json:"endMonth,omitempty"`
	Current      bool    `json:"current"`
	Grade        string  `json:"grade"`
	Description  string  `json:"description"`
	Logo         *string `json:"logo,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type Form struct {
	Institution  string `json:"institution" form:"institution" validate:"required,max=255"`
	Degree       string `json:"degree" form:"degree" validate:"required,max=255"`
	FieldOfStudy string `json:"fieldOfStudy" form:"fieldOfStudy" validate:"max=255"`
	StartMonth   string `json:"startMonth" form:"startMonth" validate:"required,datetime=2006-01"`
	EndMonth     string `json:"endMonth" form:"endMonth" validate:"omitempty,datetime=2006-01"`
	Current      bool   `json:"current" form:"current"`
	Grade        string `json:"grade" form:"grade" validate:"max=50"`
	Description  string `json:"description" form:"description" validate:"max=5000"`
	Logo         string `json:"logo" form:"logo" validate:"omitempty,max=2048"`
	RemoveLogo   bool   `json:"removeLogo" form:"removeLogo"`
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
