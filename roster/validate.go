package roster

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator checks a fully populated record (pre-ranking) and returns
// human-readable failure messages. An empty slice means the record is valid.
type Validator interface {
	Validate(e Employee) []string
}

// FieldValidator is the default field-level validator. Date ordering and
// status membership are enforced earlier in the row pipeline; this covers
// presence and format of the remaining fields.
type FieldValidator struct {
	validate *validator.Validate
}

func NewFieldValidator() *FieldValidator {
	return &FieldValidator{validate: validator.New()}
}

// employeeFields mirrors the validated subset of Employee. Optional fields
// use omitempty so absent values pass.
type employeeFields struct {
	Name   string `validate:"required,max=100"`
	Gender string `validate:"omitempty,oneof=Male Female Other"`
	Grade  string `validate:"omitempty,oneof=A+ A B C D"`
	BU     string `validate:"omitempty,max=50"`
	MPRNo  string `validate:"omitempty,max=50"`
	IOName string `validate:"omitempty,max=100"`
}

func (v *FieldValidator) Validate(e Employee) []string {
	fields := employeeFields{
		Name:   e.Name,
		Gender: e.Gender,
		Grade:  e.Grade,
		BU:     e.BU,
		MPRNo:  e.MPRNo,
		IOName: e.IOName,
	}

	err := v.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		messages = append(messages, validationMessage(fieldErr))
	}
	return messages
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Name":
		if fieldErr.Tag() == "required" {
			return "name is required"
		}
		return "name is too long"
	case "Gender":
		return fmt.Sprintf("invalid gender '%v'", fieldErr.Value())
	case "Grade":
		return fmt.Sprintf("invalid grade '%v'", fieldErr.Value())
	case "BU":
		return "bu is too long"
	case "MPRNo":
		return "mpr no is too long"
	case "IOName":
		return "io name is too long"
	default:
		return fmt.Sprintf("invalid %s", fieldErr.Field())
	}
}
