package exceptions

import (
	"clinicorp-proxy-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatValidationDetails turns validator errors into 422 detail items. The
// validator is expected to report json field names.
func FormatValidationDetails(err error) []ValidationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationDetail{{
			Loc:  []string{"body"},
			Msg:  constvars.ErrDevValidationFailed,
			Type: constvars.ErrDevValidationFailed,
		}}
	}

	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		tag := fieldErr.Tag()
		message, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			message = "is invalid"
		}
		kind := tag
		switch tag {
		case "required":
			kind = constvars.ValidationTypeMissing
		case "identifier":
			kind = constvars.ValidationTypeIntOrText
		}
		details = append(details, ValidationDetail{
			Loc:  []string{"body", fieldErr.Field()},
			Msg:  message,
			Type: kind,
		})
	}
	return details
}
