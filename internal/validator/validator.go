// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("challenge_status", validateChallengeStatus)
		_ = v.RegisterValidation("difficulty", validateDifficulty)
	}
}

func validateChallengeStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "not_started", "active", "completed":
		return true
	}
	return false
}

func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "easy", "medium", "hard":
		return true
	}
	return false
}
