// Package richtext renders untrusted rich-text metadata safely.
package richtext

import (
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// ExcerptLength is the rune budget of card excerpts.
const ExcerptLength = 150

// ExcerptMarker is appended to every excerpt.
const ExcerptMarker = "..."

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips unsafe markup from rich and marks the rest safe to render.
func Sanitize(rich string) template.HTML {
	if strings.TrimSpace(rich) == "" {
		return ""
	}
	return template.HTML(policy.Sanitize(rich))
}

// PlainText returns the text content of rich with whitespace collapsed.
// Script and style bodies are dropped.
func PlainText(rich string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rich))
	var b strings.Builder
	skipDepth := 0
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return collapse(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if tt == html.StartTagToken && isRawTextTag(string(name)) {
				skipDepth++
			}
			if !inlineTags[string(name)] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isRawTextTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
			if !inlineTags[string(name)] {
				b.WriteByte(' ')
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// Excerpt returns the first limit runes of the plain text of rich followed by
// ExcerptMarker. Empty text yields "".
func Excerpt(rich string, limit int) string {
	text := PlainText(rich)
	if text == "" {
		return ""
	}
	if limit > 0 && utf8.RuneCountInString(text) > limit {
		text = strings.TrimSpace(string([]rune(text)[:limit]))
	}
	return text + ExcerptMarker
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "code": true, "em": true, "i": true, "mark": true,
	"s": true, "small": true, "span": true, "strong": true, "sub": true, "sup": true, "u": true,
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
