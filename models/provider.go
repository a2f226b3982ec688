package models

type Provider struct {
	ID             ID     `json:"id,omitempty" form:"-"`
	Name           string `json:"name" form:"name" validate:"required"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone" validate:"required"`
	Specialization string `json:"specialization" form:"specialization" validate:"required"`
	Password       string `json:"password,omitempty" form:"password"`
}
