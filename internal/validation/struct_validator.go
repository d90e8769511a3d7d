package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// TagFinite rejects NaN and infinite floating point values
const TagFinite = "finite"

// StructValidator checks validate struct tags on domain records
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a validator with the custom tags registered
func NewStructValidator() *StructValidator {
	v := validator.New()

	_ = v.RegisterValidation(TagFinite, validateFinite)

	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &StructValidator{validate: v}
}

// ValidateStruct validates s and classifies the failure: any non-finite
// number yields domain.ErrNonFinite, other violations domain.ErrInvalidInput.
// The validator.ValidationErrors stay reachable through errors.As.
func (v *StructValidator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	for _, fe := range validationErrors {
		if fe.Tag() == TagFinite {
			return fmt.Errorf("%w: %s: %w", domain.ErrNonFinite, fe.Namespace(), validationErrors)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, validationErrors)
}

func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return utils.IsFinite(fl.Field().Float())
	default:
		return true
	}
}
