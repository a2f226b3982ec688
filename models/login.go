package models

import "LifeCarePortal/role"

type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type Registration struct {
	Name     string    `json:"name" form:"name" validate:"required"`
	Email    string    `json:"email" form:"email" validate:"required,email"`
	Password string    `json:"password" form:"password" validate:"required"`
	Role     role.Role `json:"role" form:"role" validate:"required,oneof=PATIENT DOCTOR WELLNESS_PROVIDER ADMIN"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
