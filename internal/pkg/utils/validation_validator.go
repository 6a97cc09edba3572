package utils

import (
	"clinicorp-proxy-service/internal/pkg/dto/requests"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterStructValidation(validateCancelAppointment, requests.CancelAppointment{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// validateCancelAppointment rejects ids that are present but neither a
// number nor text, e.g. booleans, objects or fractional numbers.
func validateCancelAppointment(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.CancelAppointment)
	if request.SubscriberID != nil && !request.SubscriberID.Valid() {
		sl.ReportError(request.SubscriberID, "subscriber_id", "SubscriberID", "identifier", "")
	}
	if request.AppointmentID != nil && !request.AppointmentID.Valid() {
		sl.ReportError(request.AppointmentID, "appointment_id", "AppointmentID", "identifier", "")
	}
}
