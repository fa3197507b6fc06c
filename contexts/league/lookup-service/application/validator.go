package application

import (
	"sync"

	"arena/contexts/league/lookup-service/domain/entities"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func validateSearchDirection(fl validator.FieldLevel) bool {
	_, ok := entities.ParseSearchDateDirection(fl.Field().String())
	return ok
}

// Validator returns the shared validator with the lookup rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		if err := v.RegisterValidation("search_direction", validateSearchDirection); err != nil {
			panic("failed to register validation: " + err.Error())
		}
	})
	return v
}
