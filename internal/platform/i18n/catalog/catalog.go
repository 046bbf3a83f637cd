// Package catalog loads the dashboard's English copy and formats it through
// golang.org/x/text so counts get locale-aware grouping and plural forms.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the only locale the dashboard ships.
const BaseLocale = "en-US"

// Entry is one catalog message: a plain format string or a set of plural
// forms selected by the first argument.
type Entry struct {
	Text   string
	Plural map[string]string
}

// UnmarshalYAML accepts a scalar or a mapping of plural forms
// (zero, one, two, few, many, other, or =N).
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Text)
	case yaml.MappingNode:
		forms := map[string]string{}
		if err := node.Decode(&forms); err != nil {
			return err
		}
		if _, ok := forms["other"]; !ok {
			return fmt.Errorf("line %d: plural message needs an other form", node.Line)
		}
		e.Plural = forms
		return nil
	default:
		return fmt.Errorf("line %d: message must be a string or plural map", node.Line)
	}
}

type catalogFile struct {
	Locale    string           `yaml:"locale"`
	Namespace string           `yaml:"namespace"`
	Messages  map[string]Entry `yaml:"messages"`
}

// Bundle holds every message for BaseLocale and a printer bound to them.
type Bundle struct {
	tag        language.Tag
	namespaces map[string][]string
	messages   map[string]Entry
	printer    *message.Printer
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalog files compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	tag := language.MustParse(BaseLocale)
	b := &Bundle{
		tag:        tag,
		namespaces: map[string][]string{},
		messages:   map[string]Entry{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	builder := xcatalog.NewBuilder(xcatalog.Fallback(tag))
	for key, entry := range b.messages {
		if err := builder.Set(tag, key, entry.message()); err != nil {
			return nil, fmt.Errorf("register %q: %w", key, err)
		}
	}
	b.printer = message.NewPrinter(tag, message.Catalog(builder))
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	switch {
	case locale == "":
		return fmt.Errorf("catalog %s: locale is required", p)
	case locale != dirLocale:
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, dirLocale)
	case locale != BaseLocale:
		return fmt.Errorf("catalog %s: locale %q is not supported", p, locale)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", p, namespace, fileNamespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	keys := make([]string, 0, len(file.Messages))
	for rawKey, entry := range file.Messages {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := b.messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q", p, key)
		}
		b.messages[key] = entry
		keys = append(keys, key)
	}
	slices.Sort(keys)
	b.namespaces[namespace] = keys
	return nil
}

func (e Entry) message() xcatalog.Message {
	if e.Plural == nil {
		return xcatalog.String(e.Text)
	}
	forms := make([]string, 0, len(e.Plural))
	for form := range e.Plural {
		if form != "other" {
			forms = append(forms, form)
		}
	}
	slices.Sort(forms)
	cases := make([]any, 0, 2*len(e.Plural))
	for _, form := range forms {
		cases = append(cases, form, e.Plural[form])
	}
	cases = append(cases, "other", e.Plural["other"])
	return plural.Selectf(1, "%d", cases...)
}

// Has reports whether key is defined.
func (b *Bundle) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[strings.TrimSpace(key)]
	return ok
}

// Keys returns the sorted keys of one namespace.
func (b *Bundle) Keys(namespace string) []string {
	if b == nil {
		return nil
	}
	return slices.Clone(b.namespaces[strings.TrimSpace(namespace)])
}

// Sprintf formats the message stored under key. Unknown keys are returned
// as-is so a missing entry shows up on the page instead of blank text.
func (b *Bundle) Sprintf(key string, args ...any) string {
	if b == nil || b.printer == nil {
		return key
	}
	if !b.Has(key) {
		return key
	}
	return b.printer.Sprintf(key, args...)
}

// Printer exposes the x/text printer for number formatting.
func (b *Bundle) Printer() *message.Printer {
	if b == nil || b.printer == nil {
		return message.NewPrinter(language.MustParse(BaseLocale))
	}
	return b.printer
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
