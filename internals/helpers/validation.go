package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for all DTOs.
var Validate = validator.New()

// ValidationMessages turns validator errors into a field → messages map for
// the 422 response body.
func ValidationMessages(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "gte":
			msg = "must be greater than or equal to " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		case "oneof":
			msg = "must be one of: " + fe.Param()
		default:
			msg = "invalid value"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
