package service

// Service is an offering shown on the services page, ordered by Ord.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Ord         int    `json:"ord"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Form struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required,max=5000"`
	Icon        string `json:"icon" form:"icon" validate:"max=100"`
	Ord         int    `json:"ord" form:"ord" validate:"min=0"`
}
