package adoption

import (
	"github.com/go-playground/validator/v10"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain"
)

func init() {
	domain.RegisterValidation("housing", func(fl validator.FieldLevel) bool {
		return HousingType(fl.Field().String()).IsValid()
	})
}
