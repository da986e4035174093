// Package validation checks operator input and imported data before it
// reaches the store or the playtime tracker.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Names are shown in fixed-width tables, so length is counted in
	// user-perceived characters rather than bytes.
	_ = v.RegisterValidation("maxgraphemes", func(fl validator.FieldLevel) bool {
		maxLength, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return uniseg.GraphemeClusterCount(fl.Field().String()) <= maxLength
	})

	return v
}

// Struct validates s against its `validate` tags. Failures are returned as
// an error wrapping common.ErrorValidation that lists the offending fields.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(fields, ", "))
}

// Var validates a single value against tag, e.g. Var(name, "required,maxgraphemes=64").
func Var(value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
