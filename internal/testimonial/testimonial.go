package testimonial

// Testimonial is a client quote. Rating is 0..5, 0 meaning unrated.
type Testimonial struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Company   string  `json:"company"`
	Quote     string  `json:"quote"`
	Rating    int     `json:"rating"`
	Avatar    *string `json:"avatar,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type Form struct {
	Name         string `json:"name" form:"name" validate:"required,max=255"`
	Role         string `json:"role" form:"role" validate:"max=255"`
	Company      string `json:"company" form:"company" validate:"max=255"`
	Quote        string `json:"quote" form:"quote" validate:"required,max=5000"`
	Rating       int    `json:"rating" form:"rating" validate:"min=0,max=5"`
	Avatar       string `json:"avatar" form:"avatar" validate:"omitempty,max=2048"`
	RemoveAvatar bool   `json:"removeAvatar" form:"removeAvatar"`
}
