package contrast

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the validator instance for contrast inputs.
// Field names are reported by their json tag.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateAs validates v and converts every failing field into a
// *RangeError whose Field is prefixed with role.
func validateAs(role string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("contrast: validate %s: %w", role, err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Type.field.sub"; drop the type name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		errs = append(errs, &RangeError{Field: role + "." + path, Value: fe.Value(), Rule: rule})
	}
	return errors.Join(errs...)
}
