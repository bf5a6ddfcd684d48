// Package validation wraps validator/v10 so every form reports errors keyed by
// the same field names the client submits.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Errors maps a form field name to a human readable message.
type Errors map[string]string

// Add keeps the first message recorded for a field.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Span is an ordered pair of ISO dates (or months) stored as strings.
// ISO formats compare correctly as plain strings.
type Span struct {
	StartField string
	EndField   string
	Start      string
	End        string
	// Open allows an empty End, e.g. a position the owner still holds.
	Open bool
}

// Spanner is implemented by forms that carry date ranges.
type Spanner interface {
	Spans() []Span
}

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Struct validates s and returns nil when it is valid.
func (v *Validator) Struct(s any) Errors {
	errs := Errors{}

	if err := v.validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs.Add("form", err.Error())
			return errs
		}
		for _, fe := range fieldErrs {
			errs.Add(fe.Field(), fe.Translate(v.trans))
		}
	}

	if sp, ok := s.(Spanner); ok {
		for _, span := range sp.Spans() {
			checkSpan(span, errs)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkSpan(span Span, errs Errors) {
	if span.Start == "" {
		return
	}
	if span.End == "" {
		if !span.Open {
			errs.Add(span.EndField, span.EndField+" is a required field")
		}
		return
	}
	if span.End < span.Start {
		errs.Add(span.EndField, span.EndField+" must not be before "+span.StartField)
	}
}

// fieldName prefers the form tag, then the json tag, then the Go name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		tag := fld.Tag.Get(key)
		if tag == "" {
			continue
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
