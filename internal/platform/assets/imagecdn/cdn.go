// Package imagecdn builds resize URLs for images hosted on the content
// backend's imgix-compatible CDN.
package imagecdn

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrSourceURLRequired is returned when an image has no hosted URL.
var ErrSourceURLRequired = errors.New("image source url is required")

// Transform is one delivery size.
type Transform struct {
	WidthPX  int
	HeightPX int
}

// Delivery sizes used by the dashboard.
var (
	ProjectCard   = Transform{WidthPX: 800, HeightPX: 400}
	ProjectDetail = Transform{WidthPX: 1200, HeightPX: 600}
	GalleryThumb  = Transform{WidthPX: 400, HeightPX: 300}
	CompanyLogo   = Transform{WidthPX: 64, HeightPX: 64}
	ClientPhoto   = Transform{WidthPX: 48, HeightPX: 48}
)

const (
	fitParam  = "crop"
	autoParam = "format,compress"
)

// URL appends w, h, fit and auto parameters to source. Existing query
// parameters are kept; any w/h/fit/auto already present are replaced.
func URL(source string, transform Transform) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", ErrSourceURLRequired
	}
	parsed, err := url.Parse(source)
	if err != nil {
		return "", err
	}

	var kept []string
	for _, pair := range strings.Split(parsed.RawQuery, "&") {
		if pair == "" {
			continue
		}
		name, _, _ := strings.Cut(pair, "=")
		switch name {
		case "w", "h", "fit", "auto":
			continue
		}
		kept = append(kept, pair)
	}
	params := make([]string, 0, 4)
	if transform.WidthPX > 0 {
		params = append(params, "w="+strconv.Itoa(transform.WidthPX))
	}
	if transform.HeightPX > 0 {
		params = append(params, "h="+strconv.Itoa(transform.HeightPX))
	}
	params = append(params, "fit="+fitParam, "auto="+autoParam)

	parsed.RawQuery = strings.Join(append(kept, params...), "&")
	return parsed.String(), nil
}

// URLOrEmpty is URL for optional images: a missing or invalid source yields
// "" so the image is left out.
func URLOrEmpty(source string, transform Transform) string {
	resolved, err := URL(source, transform)
	if err != nil {
		return ""
	}
	return resolved
}
