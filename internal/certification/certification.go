package certification

import "github.com/wichananm65/portfolio-backend/internal/validation"

// Certification is a credential with an optional expiry date.
type Certification struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     string  `json:"issueDate"`
	ExpiryDate    *string `json:"expiryDate,omitempty"`
	CredentialID  string  `json:"credentialId"`
	CredentialURL *string `json:"credentialUrl,omitempty"`
	Image         *string `json:"image,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// Expired reports whether the certification expired before today (YYYY-MM-DD).
func (c Certification) Expired(today string) bool {
	return c.ExpiryDate != nil && *c.ExpiryDate < today
}

type Form struct {
	Name          string `json:"name" form:"name" validate:"required,max=255"`
	Issuer        string `json:"issuer" form:"issuer" validate:"required,max=255"`
	IssueDate     string `json:"issueDate" form:"issueDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate    string `json:"expiryDate" form:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	CredentialID  string `json:"credentialId" form:"credentialId" validate:"max=255"`
	CredentialURL string `json:"credentialUrl" form:"credentialUrl" validate:"omitempty,url"`
	Image         string `json:"image" form:"image" validate:"omitempty,max=2048"`
	RemoveImage   bool   `json:"removeImage" form:"removeImage"`
}

func (f Form) Spans() []validation.Span {
	return []validation.Span{{
		StartField: "issueDate",
		EndField:   "expiryDate",
		Start:      f.IssueDate,
		End:        f.ExpiryDate,
		Open:       true,
	}}
}
