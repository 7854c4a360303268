package utils

import (
	"patient-service/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("occupation", validateOccupation)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName makes validation messages use the names clients send.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.GenderMale || value == constvars.GenderFemale
}

func validateOccupation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.OccupationRetired,
		constvars.OccupationFreelancer,
		constvars.OccupationStudent,
		constvars.OccupationGovernmentJob,
		constvars.OccupationBusinessOwner,
		constvars.OccupationUnemployed,
		constvars.OccupationPrivateJob:
		return true
	}
	return false
}
