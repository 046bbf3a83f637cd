// Package formx reads and validates dashboard form posts.
package formx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// maxFormBytes bounds url-encoded form bodies.
const maxFormBytes = 1 << 20

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key string, args ...any) string
}

// Parse reads the posted form of r.
func Parse(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	if w != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// Form validates posted values field by field. Messages are localized and
// keyed by field name; the first failure per field wins.
type Form struct {
	Values url.Values
	Errors map[string]string
	loc    Localizer
}

// New wraps values for validation.
func New(values url.Values, loc Localizer) *Form {
	if values == nil {
		values = url.Values{}
	}
	return &Form{Values: values, Errors: map[string]string{}, loc: loc}
}

// Valid reports whether no field failed.
func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

// Get returns the trimmed value of field.
func (f *Form) Get(field string) string {
	return strings.TrimSpace(f.Values.Get(field))
}

// Bool reports whether a checkbox field was ticked.
func (f *Form) Bool(field string) bool {
	switch strings.ToLower(f.Get(field)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// Fail records message for field unless it already failed.
func (f *Form) Fail(field, key string, args ...any) {
	if _, exists := f.Errors[field]; exists {
		return
	}
	f.Errors[field] = f.sprintf(key, args...)
}

// Required returns the trimmed value of field, failing when it is empty.
func (f *Form) Required(field string) string {
	value := f.Get(field)
	if value == "" {
		f.Fail(field, "error.required", f.Label(field))
	}
	return value
}

// URL returns an optional absolute http(s) URL.
func (f *Form) URL(field string) string {
	value := f.Get(field)
	if value == "" {
		return ""
	}
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		f.Fail(field, "error.invalid_url", f.Label(field))
		return ""
	}
	return parsed.String()
}

// Date returns an optional YYYY-MM-DD date.
func (f *Form) Date(field string) content.Date {
	value := f.Get(field)
	if value == "" {
		return content.Date{}
	}
	date, err := content.ParseDate(value)
	if err != nil {
		f.Fail(field, "error.invalid_date", f.Label(field))
		return content.Date{}
	}
	return date
}

// Number returns an optional non-negative number.
func (f *Form) Number(field string) content.Number {
	value := f.Get(field)
	if value == "" {
		return content.Number{}
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		f.Fail(field, "error.invalid_number", f.Label(field))
		return content.Number{}
	}
	return content.Number{Value: parsed, Valid: true}
}

// Option returns the key of an optional select field, failing when the key is
// not in table.
func (f *Form) Option(field string, table []content.Option) string {
	value := f.Get(field)
	if value == "" {
		return ""
	}
	if _, ok := content.LookupOption(table, value); !ok {
		f.Fail(field, "error.invalid_option", f.Label(field))
		return ""
	}
	return value
}

// Label returns the localized name of field.
func (f *Form) Label(field string) string {
	return f.sprintf("field." + field)
}

func (f *Form) sprintf(key string, args ...any) string {
	if f.loc == nil {
		return key
	}
	return f.loc.Sprintf(key, args...)
}

// DateValue formats d for a date input.
func DateValue(d content.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// NumberValue formats n for a number input.
func NumberValue(n content.Number) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Compact drops empty string values from metadata so create calls only send
// fields the form filled in.
func Compact(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata))
	for key, value := range metadata {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[key] = value
	}
	return out
}
