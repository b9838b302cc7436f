// Package validation wraps the shared go-playground validator instance used
// by every controller to reject malformed request bodies before they reach a
// service.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct validates the tagged fields of a request DTO.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
