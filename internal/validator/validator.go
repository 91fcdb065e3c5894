package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// New creates a new validator instance.
func New() *validator.Validate {
	valid := validator.New()
	if err := RegisterLaunchIDValidation(valid); err != nil {
		panic(fmt.Sprintf("validator initialization; error: %s", err))
	}

	return valid
}

// RegisterLaunchIDValidation registers the "launchid" field validator with
// the validator instance.
func RegisterLaunchIDValidation(validator *validator.Validate) error {
	return validator.RegisterValidation("launchid", launchID)
}

var launchIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// launchID matches against launch identifiers. The API issues both short
// numeric ids and 24 character hex object ids, e.g.:
// - 109
// - 5eb87cd9ffd86e000604b32a
func launchID(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return launchIDRE.MatchString(val)
}
