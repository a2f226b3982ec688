package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"LifeCarePortal/utils"
)

var (
	validate      = validator.New()
	ErrValidation = errors.New(utils.VALIDATION_FAILED)
)

/*
* Run the struct's validate tags
* Report the failing fields wrapped in ErrValidation
 */
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}
