package user

import (
	"fmt"

	"github.com/at-ishikawa/aiboost/internal/validation"
)

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

// UserForm is the admin payload for creating or updating an account.
// Password is optional on update.
type UserForm struct {
	Name     string `json:"name,omitempty" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     Role   `json:"role,omitempty" validate:"required,oneof=learner mentor admin"`
}

// FormValidator checks forms before any request is sent.
type FormValidator struct {
	validator *validation.Validator
}

func NewFormValidator() (*FormValidator, error) {
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("validation.New() > %w", err)
	}
	return &FormValidator{validator: v}, nil
}

func (fv *FormValidator) Validate(form any) error {
	return fv.validator.Struct(form)
}
