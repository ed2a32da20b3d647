package utils

import (
	"screening-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sex", validateSex)
	validate.RegisterValidation("answer", validateAnswer)
	validate.RegisterValidation("not_future", validateNotFuture)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSex(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SexMale || value == constvars.SexFemale
}

func validateAnswer(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AnswerYes || value == constvars.AnswerNo
}

func validateNotFuture(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	parsed, err := time.Parse(constvars.TrackerDateLayout, value)
	if err != nil {
		return false
	}
	return !parsed.After(time.Now())
}
