package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
)

// newValidator паникует, если правило не зарегистрировалось
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("payment_provider", validPaymentProvider); err != nil {
		panic(fmt.Sprintf("create_booking: register payment_provider validation: %v", err))
	}
	return v
}

func validPaymentProvider(fl validator.FieldLevel) bool {
	return domain.PaymentProvider(fl.Field().String()).IsKnown()
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if err := uc.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateDates проверяет, что срок не пустой и заезд не в прошлом
func validateDates(checkIn, checkOut, now time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}

	if checkIn.Before(engine.NormalizeDate(now)) {
		return ErrCheckInInPast
	}

	return nil
}
