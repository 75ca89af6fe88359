package models

import "time"

// User is an account row. Username is the primary key and never changes;
// Password holds the full credential string ("algorithm$salt$digest"), and
// Filename is the avatar basename under the upload directory.
type User struct {
	Username string    `json:"username" gorm:"primaryKey;size:40"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Filename string    `json:"filename"`
	Created  time.Time `json:"created" gorm:"autoCreateTime"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// CreateAccountRequest carries the account-creation form fields. The avatar
// file travels separately as multipart content.
type CreateAccountRequest struct {
	Username string `form:"username" validate:"required,max=40"`
	Password string `form:"password" validate:"required"`
	Fullname string `form:"fullname" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
}

// EditAccountRequest carries the profile-edit form fields. An omitted avatar
// file means "keep the existing one".
type EditAccountRequest struct {
	Fullname string `form:"fullname" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
}

// UpdatePasswordRequest carries the password-change form fields.
type UpdatePasswordRequest struct {
	Password     string `form:"password" validate:"required"`
	NewPassword1 string `form:"new_password1" validate:"required"`
	NewPassword2 string `form:"new_password2" validate:"required"`
}
