package validator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct runs the struct's `validate` tags and flattens every
// violation into one error.
func ValidateStruct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		msgs = append(msgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param(),
		))
	}

	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
