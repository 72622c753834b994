package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("invalid input")

// FieldError reports the first required field that could not be read as a number.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Values holds parsed inputs keyed by field name.
type Values map[string]float64

func (v Values) Get(name string) float64 {
	return v[name]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("float", validFloat)
	return v
}

func validFloat(fl validator.FieldLevel) bool {
	_, err := ParseFloat(fl.Field().String())
	return err == nil
}

var errHexLiteral = errors.New("hexadecimal literals are not accepted")

// ParseFloat reads s the way users type numbers into a form: surrounding
// blanks are ignored and literals too large for float64 become ±Inf.
// Only decimal notation is accepted.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, errHexLiteral
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// Parse coerces every named field of src to float64. It fails on the first
// field that is missing or not numeric; nothing is returned partially.
func Parse(src url.Values, fields ...string) (Values, error) {
	out := make(Values, len(fields))
	for _, name := range fields {
		if !src.Has(name) {
			return nil, &FieldError{Field: name, Reason: "missing"}
		}
		raw := src.Get(name)
		if err := validate.Var(raw, "required,float"); err != nil {
			return nil, &FieldError{Field: name, Value: raw, Reason: "not a number"}
		}
		f, err := ParseFloat(raw)
		if err != nil {
			return nil, &FieldError{Field: name, Value: raw, Reason: "not a number"}
		}
		out[name] = f
	}
	return out, nil
}

// FromJSON converts decoded JSON inputs to form values. Numbers and numeric
// strings are kept; anything else is dropped and later reported as missing.
func FromJSON(m map[string]any) url.Values {
	out := make(url.Values, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case float64:
			out.Set(k, strconv.FormatFloat(t, 'g', -1, 64))
		case json.Number:
			out.Set(k, t.String())
		case string:
			out.Set(k, t)
		}
	}
	return out
}

// Validator exposes the shared validator so other packages reuse the float tag.
func Validator() *validator.Validate {
	return validate
}
