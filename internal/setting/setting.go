package setting

// Setting holds the site-wide details shared with every page as "site".
// There is exactly one row.
type Setting struct {
	SiteName     string  `json:"siteName"`
	Tagline      string  `json:"tagline"`
	Description  string  `json:"description"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	ResumeURL    *string `json:"resumeUrl,omitempty"`
	Logo         *string `json:"logo,omitempty"`
	GithubURL    string  `json:"githubUrl"`
	LinkedinURL  string  `json:"linkedinUrl"`
	TwitterURL   string  `json:"twitterUrl"`
	InstagramURL string  `json:"instagramUrl"`
	UpdatedAt    string  `json:"updatedAt"`
}

// Default is served until the owner saves the settings for the first time.
func Default() Setting {
	return Setting{SiteName: "Portfolio"}
}

// Socials lists the non-empty social profile links by network.
func (s Setting) Socials() map[string]string {
	out := map[string]string{}
	for name, url := range map[string]string{
		"github":    s.GithubURL,
		"linkedin":  s.LinkedinURL,
		"twitter":   s.TwitterURL,
		"instagram": s.InstagramURL,
	} {
		if url != "" {
			out[name] = url
		}
	}
	return out
}

type Form struct {
	SiteName     string `json:"siteName" form:"siteName" validate:"required,max=255"`
	Tagline      string `json:"tagline" form:"tagline" validate:"max=255"`
	Description  string `json:"description" form:"description" validate:"max=5000"`
	Email        string `json:"email" form:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" form:"phone" validate:"max=50"`
	Location     string `json:"location" form:"location" validate:"max=255"`
	ResumeURL    string `json:"resumeUrl" form:"resumeUrl" validate:"omitempty,url"`
	Logo         string `json:"logo" form:"logo" validate:"omitempty,max=2048"`
	GithubURL    string `json:"githubUrl" form:"githubUrl" validate:"omitempty,url"`
	LinkedinURL  string `json:"linkedinUrl" form:"linkedinUrl" validate:"omitempty,url"`
	TwitterURL   string `json:"twitterUrl" form:"twitterUrl" validate:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" form:"instagramUrl" validate:"omitempty,url"`
	RemoveLogo   bool   `json:"removeLogo" form:"removeLogo"`
	RemoveResume bool   `json:"removeResume" form:"removeResume"`
}
