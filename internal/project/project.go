package project

// Project is a portfolio piece. Slug is unique and used in public URLs.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
	LiveURL     *string  `json:"liveUrl,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Year        int      `json:"year"`
	Featured    bool     `json:"featured"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Form accepts techStack as a JSON array, repeated form fields or a comma
// separated string.
type Form struct {
	Title       string   `json:"title" form:"title" validate:"required,max=255"`
	Slug        string   `json:"slug" form:"slug" validate:"omitempty,max=255"`
	Description string   `json:"description" form:"description" validate:"required,max=10000"`
	TechStack   []string `json:"techStack" form:"techStack" validate:"max=30,dive,max=50"`
	GithubURL   string   `json:"githubUrl" form:"githubUrl" validate:"omitempty,url"`
	LiveURL     string   `json:"liveUrl" form:"liveUrl" validate:"omitempty,url"`
	Image       string   `json:"image" form:"image" validate:"omitempty,max=2048"`
	Year        int      `json:"year" form:"year" validate:"omitempty,min=1970,max=2100"`
	Featured    bool     `json:"featured" form:"featured"`
	RemoveImage bool     `json:"removeImage" form:"removeImage"`
}
