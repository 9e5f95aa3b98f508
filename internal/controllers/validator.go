package controllers

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Wire it with e.Validator = controllers.NewValidator().
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
