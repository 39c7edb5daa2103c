// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneymanager/internal/form"
	"moneymanager/internal/models"
	"moneymanager/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tx_kind", validateTransactionKind)
		_ = v.RegisterValidation("form_kind", validateFormKind)
		_ = v.RegisterValidation("division", validateDivision)
		_ = v.RegisterValidation("time_range", validateTimeRange)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.TransactionKind(fl.Field().String()).Valid()
}

func validateFormKind(fl validator.FieldLevel) bool {
	return form.Kind(fl.Field().String()).Valid()
}

func validateDivision(fl validator.FieldLevel) bool {
	return models.Division(fl.Field().String()).Valid()
}

func validateTimeRange(fl validator.FieldLevel) bool {
	return period.Preset(fl.Field().String()).Valid()
}
