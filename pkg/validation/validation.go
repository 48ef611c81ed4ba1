package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError ошибка одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors ошибки валидации структуры
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return strings.Join(messages, "; ")
}

// Validator go-playground/validator с тегами сервиса:
//   date  - дата YYYY-MM-DD
//   slot  - метка слота ("06:00-07:00"), без управляющих символов, до 32 символов
//   phone - телефон: цифры, пробелы, +, -, (, )
// Имена полей в ошибках берутся из json тегов.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation("date", validateDate)
	_ = v.RegisterValidation("slot", validateSlot)
	_ = v.RegisterValidation("phone", validatePhone)

	return &Validator{validate: v}
}

// Struct возвращает Errors, если структура невалидна
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	out := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "slot":
		return "must be a slot label such as 06:00-07:00"
	case "phone":
		return "must be a phone number"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateSlot(fl validator.FieldLevel) bool {
	slot := strings.TrimSpace(fl.Field().String())
	if slot == "" || len(slot) > 32 {
		return false
	}
	for _, r := range slot {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.TrimSpace(fl.Field().String())
	if phone == "" {
		return false
	}
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 6 && digits <= 15
}
