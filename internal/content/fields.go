package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Option is an enumerated metadata value. Key is the stable machine value;
// Label is display text only.
type Option struct {
	Key   string
	Label string
}

// IsZero reports whether the option is absent.
func (o Option) IsZero() bool {
	return o.Key == ""
}

// UnmarshalJSON accepts the bucket's {"key","value"} pair or a bare string.
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*o = Option{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		*o = Option{Key: value, Label: value}
		return nil
	}
	var wire struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*o = Option{Key: strings.TrimSpace(wire.Key), Label: strings.TrimSpace(wire.Value)}
	if o.Label == "" {
		o.Label = o.Key
	}
	return nil
}

// Image references a hosted media file. ImgixURL accepts resize parameters.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// IsZero reports whether the image is absent.
func (i Image) IsZero() bool {
	return i.URL == "" && i.ImgixURL == ""
}

// TemplateURL returns the transformable URL, falling back to the raw URL.
func (i Image) TemplateURL() string {
	if i.ImgixURL != "" {
		return i.ImgixURL
	}
	return i.URL
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date is an optional calendar date. The zero Date means the field was
// missing, empty or unparseable.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the date formats the bucket emits.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return Date{Time: parsed.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", value)
}

// UnmarshalJSON decodes a date string; null and "" leave the Date zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	if isNull(bytes.TrimSpace(data)) {
		*d = Date{}
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the date in the bucket's date-only format.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// Number is an optional numeric metadata value.
type Number struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts JSON numbers and numeric strings.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*n = Number{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			*n = Number{}
			return nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*n = Number{Value: parsed, Valid: true}
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*n = Number{Value: value, Valid: true}
	return nil
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
