package award

// Award is a prize or recognition listed on the home page.
type Award struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	URL         *string `json:"url,omitempty"`
	Image       *string `json:"image,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Form is the payload accepted by store and update.
type Form struct {
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Issuer      string `json:"issuer" form:"issuer" validate:"required,max=255"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	URL         string `json:"url" form:"url" validate:"omitempty,url"`
	Image       string `json:"image" form:"image" validate:"omitempty,max=2048"`
	RemoveImage bool   `json:"removeImage" form:"removeImage"`
}
