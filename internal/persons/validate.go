package persons

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/golang-module/carbon/v2"

	"github.com/biograph/persona-mcp/internal/domain"
)

var (
	fieldValidate *validator.Validate
	validateOnce  sync.Once
)

// fieldValidator returns the shared validator, configured to report JSON
// field names instead of Go struct field names.
func fieldValidator() *validator.Validate {
	validateOnce.Do(func() {
		fieldValidate = validator.New()
		fieldValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return fieldValidate
}

// validateArgs runs tag-based validation on a tool argument struct and folds
// any violations into a single ErrInvalidField error with per-field messages.
func validateArgs(args any) error {
	err := fieldValidator().Struct(args)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	msgs := make([]string, 0, len(violations))
	for _, fe := range violations {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(msgs, "; "))
}

// fieldErrorMessage renders one validator violation as a friendly message.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// Timestamp and datetime_str layouts, in carbon format codes.
const (
	birthTimeLayout = "Y-m-d H:i"
	timestampLayout = "Y-m-d H:i:s"
)

// newBirthTime validates the calendar fields and builds the stored birth time.
// Field ranges are checked by tags upstream; this catches dates that pass the
// per-field ranges but do not exist, such as February 30th.
func newBirthTime(year, month, day, hour, minute int) (domain.BirthTime, error) {
	c := carbon.CreateFromDateTime(year, month, day, hour, minute, 0)
	if c.Error != nil {
		return domain.BirthTime{}, fmt.Errorf("%w: %v", ErrInvalidBirthTime, c.Error)
	}

	// time.Date normalizes overflow silently, so round-trip the fields.
	if c.Year() != year || c.Month() != month || c.Day() != day || c.Hour() != hour || c.Minute() != minute {
		return domain.BirthTime{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d does not exist",
			ErrInvalidBirthTime, year, month, day, hour, minute)
	}

	return domain.BirthTime{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		DateTimeStr: c.Format(birthTimeLayout),
	}, nil
}

// ageOf computes the current age in whole years for a stored birth time.
func ageOf(bt domain.BirthTime) int {
	return carbon.CreateFromDateTime(bt.Year, bt.Month, bt.Day, bt.Hour, bt.Minute, 0).Age()
}

// now renders the current time in the timestamp layout used by
// created_at and updated_at.
func now() string {
	return carbon.Now().Format(timestampLayout)
}
