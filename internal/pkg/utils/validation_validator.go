package utils

import (
	"medflow-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("image_type", validateImageType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "patient", "physician", "nurse", "specialist", "admin":
		return true
	}
	return false
}

func validateImageType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "xray", "skin", "fundus", "ct", "mri":
		return true
	}
	return false
}
