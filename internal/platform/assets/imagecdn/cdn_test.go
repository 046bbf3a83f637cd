package imagecdn

import (
	"errors"
	"testing"
)

func TestURLAppendsTransform(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		transform Transform
		want      string
	}{
		{
			name:      "project card",
			source:    "https://imgix.cosmicjs.com/abc-atlas.png",
			transform: ProjectCard,
			want:      "https://imgix.cosmicjs.com/abc-atlas.png?w=800&h=400&fit=crop&auto=format,compress",
		},
		{
			name:      "client photo",
			source:    "https://imgix.cosmicjs.com/face.jpg",
			transform: ClientPhoto,
			want:      "https://imgix.cosmicjs.com/face.jpg?w=48&h=48&fit=crop&auto=format,compress",
		},
		{
			name:      "keeps unrelated params",
			source:    "https://imgix.cosmicjs.com/logo.png?dpr=2&w=10",
			transform: CompanyLogo,
			want:      "https://imgix.cosmicjs.com/logo.png?dpr=2&w=64&h=64&fit=crop&auto=format,compress",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := URL(tc.source, tc.transform)
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("URL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestURLRejectsMissingSource(t *testing.T) {
	if _, err := URL("  ", GalleryThumb); !errors.Is(err, ErrSourceURLRequired) {
		t.Fatalf("URL() error = %v, want %v", err, ErrSourceURLRequired)
	}
}

func TestURLOrEmpty(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "", want: ""},
		{source: "   ", want: ""},
		{source: "http://[::1]:namedport", want: ""},
		{source: "https://imgix.cosmicjs.com/a.png", want: "https://imgix.cosmicjs.com/a.png?w=400&h=300&fit=crop&auto=format,compress"},
	}
	for _, tc := range tests {
		if got := URLOrEmpty(tc.source, GalleryThumb); got != tc.want {
			t.Fatalf("URLOrEmpty(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}
