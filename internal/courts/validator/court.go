package validator

import (
	"errors"
	"fmt"
	"strings"

	"courtly/pkg/logger"
	"courtly/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type CourtValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCourtValidator(log *logger.Logger) *CourtValidator {
	return &CourtValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *CourtValidator) Validate(court *model.Court) error {
	if err := v.validate.Struct(court); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return v.validateWindow(court.OpeningTime, court.ClosingTime)
}

func (v *CourtValidator) ValidateUpdate(update *model.CourtUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if update.OpeningTime != "" && !model.IsValidClockTime(update.OpeningTime) {
		return ValidationErrors{
			ValidationError{Field: "OpeningTime", Message: "opening_time must be in HH:MM format (00:00-23:59)"},
		}
	}
	if update.ClosingTime != "" && !model.IsValidClockTime(update.ClosingTime) {
		return ValidationErrors{
			ValidationError{Field: "ClosingTime", Message: "closing_time must be in HH:MM format (00:00-23:59)"},
		}
	}

	return nil
}

func (v *CourtValidator) validateWindow(openingTime, closingTime string) error {
	if !model.IsValidClockTime(openingTime) {
		return ValidationErrors{
			ValidationError{Field: "OpeningTime", Message: "opening_time must be in HH:MM format (00:00-23:59)"},
		}
	}
	if !model.IsValidClockTime(closingTime) {
		return ValidationErrors{
			ValidationError{Field: "ClosingTime", Message: "closing_time must be in HH:MM format (00:00-23:59)"},
		}
	}
	if closingTime <= openingTime {
		return ValidationErrors{
			ValidationError{Field: "ClosingTime", Message: "closing_time must be after opening_time"},
		}
	}
	return nil
}

func (v *CourtValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
