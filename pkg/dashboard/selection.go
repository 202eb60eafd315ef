package dashboard

import (
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/go-playground/validator/v10"
)

// Selection is the state a user controls: one year and one department.
type Selection struct {
	Year       int    `json:"year" validate:"idmyear"`
	Department string `json:"department" validate:"required,department"`
}

// Validator checks selections against the closed lists of years and
// departments. It satisfies echo.Validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator for the given filters.
func NewValidator(f idm.Filters) *Validator {
	v := validator.New()
	// registration fails only on empty tags or nil functions
	_ = v.RegisterValidation("idmyear", func(fl validator.FieldLevel) bool {
		return f.HasYear(int(fl.Field().Int()))
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return f.HasDepartment(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate returns validator.ValidationErrors for invalid structs.
func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}
