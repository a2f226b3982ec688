package models

type WellnessService struct {
	ID          ID     `json:"id,omitempty" form:"-"`
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Duration    string `json:"duration" form:"duration" validate:"required"`
	Fee         Number `json:"fee" form:"fee" validate:"required,numeric"`
}
