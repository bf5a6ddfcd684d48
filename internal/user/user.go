package user

// User is the site owner. There is normally a single account.
type User struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	Name      string  `json:"name"`
	AvatarPic *string `json:"avatarPic,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

// ProfileForm changes the account details. The password only changes when
// NewPassword is set, and then CurrentPassword must match.
type ProfileForm struct {
	Name                    string `json:"name" form:"name" validate:"required,max=255"`
	Email                   string `json:"email" form:"email" validate:"required,email"`
	CurrentPassword         string `json:"currentPassword" form:"currentPassword" validate:"required_with=NewPassword"`
	NewPassword             string `json:"newPassword" form:"newPassword" validate:"omitempty,min=8,max=72"`
	NewPasswordConfirmation string `json:"newPasswordConfirmation" form:"newPasswordConfirmation" validate:"eqfield=NewPassword"`
	AvatarPic               string `json:"avatarPic" form:"avatarPic" validate:"omitempty,max=2048"`
	RemoveAvatarPic         bool   `json:"removeAvatarPic" form:"removeAvatarPic"`
}

func sanitizeUser(user User) User {
	user.Password = ""
	return user
}
