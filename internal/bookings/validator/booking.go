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

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("slot_date", validateSlotDate); err != nil {
		log.Fatal("Failed to register 'slot_date' validator",
			"error", err,
		)
	}
	if err := v.RegisterValidation("clock_time", validateClockTime); err != nil {
		log.Fatal("Failed to register 'clock_time' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateSlotDate(fl validator.FieldLevel) bool {
	return model.IsValidDate(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return model.IsValidClockTime(fl.Field().String())
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if !model.IsValidDate(booking.Date) {
		return ValidationErrors{
			ValidationError{
				Field:   "Date",
				Message: "date must be in YYYY-MM-DD format",
			},
		}
	}

	if !model.IsValidClockTime(booking.StartTime) {
		return ValidationErrors{
			ValidationError{
				Field:   "StartTime",
				Message: "start_time must be in HH:MM format (00:00-23:59)",
			},
		}
	}

	if !model.IsValidClockTime(booking.EndTime) {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "end_time must be in HH:MM format (00:00-23:59)",
			},
		}
	}

	if booking.EndTime <= booking.StartTime {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "end_time must be after start_time",
			},
		}
	}

	return nil
}

// ValidateWindow checks the slot against the court's daily opening window.
func (v *BookingValidator) ValidateWindow(booking *model.Booking, court *model.Court) error {
	if booking.StartTime < court.OpeningTime || booking.EndTime > court.ClosingTime {
		return ValidationErrors{
			ValidationError{
				Field: "StartTime",
				Message: fmt.Sprintf("slot %s-%s is outside court opening hours %s-%s",
					booking.StartTime, booking.EndTime, court.OpeningTime, court.ClosingTime),
			},
		}
	}
	return nil
}

// ValidateReason rejects blank manager and user supplied reasons.
func (v *BookingValidator) ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ValidationErrors{
			ValidationError{
				Field:   "Reason",
				Message: "reason cannot be empty",
			},
		}
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
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
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +5511987654321)", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "slot_date":
			message = fmt.Sprintf("%s must be in YYYY-MM-DD format", err.Field())
		case "clock_time":
			message = fmt.Sprintf("%s must be in HH:MM format (00:00-23:59)", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
