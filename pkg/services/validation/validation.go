package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/go-playground/validator/v10"
)

var ErrInvalid = errors.New("invalid input")

var localDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("localdate", func(fl validator.FieldLevel) bool {
		return localDatePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("medfrequency", func(fl validator.FieldLevel) bool {
		switch domain.MedicationFrequency(fl.Field().String()) {
		case domain.FrequencyOnce, domain.FrequencyTwice, domain.FrequencyThrice,
			domain.FrequencyFourTimes, domain.FrequencyAsNeeded, domain.FrequencyOther:
			return true
		}
		return false
	})
	_ = validate.RegisterValidation("medtiming", func(fl validator.FieldLevel) bool {
		switch domain.MedicationTiming(fl.Field().String()) {
		case domain.TimingMorning, domain.TimingMidday, domain.TimingAfternoon,
			domain.TimingEvening, domain.TimingBedtime:
			return true
		}
		return false
	})
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors lists every violated constraint of one value.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("validation: %s: %s", e[0].Field, e[0].Message)
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e), strings.Join(parts, "; "))
}

func (e Errors) Unwrap() error { return ErrInvalid }

func CheckIn(c store.CheckIn) error {
	return check(c)
}

func Event(e store.TrackingEvent) error {
	return check(e)
}

func Settings(s store.AppSettings) error {
	return check(s)
}

func MedicationEntry(e store.MedicationEntry) error {
	return check(e)
}

func MedicationConfig(c store.UserMedicationConfig) error {
	return check(c)
}

func Administration(a store.MedicationAdministration) error {
	return check(a)
}

func ImportEnvelope(env store.ImportEnvelope) error {
	return check(env)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   trimRoot(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// trimRoot drops the struct type name that leads every namespace.
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "localdate":
		return "must be a yyyy-MM-dd date"
	case "medfrequency":
		return "is not a known frequency"
	case "medtiming":
		return "is not a known timing"
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
