// Package i18n translates list view labels. Messages live in YAML catalogs,
// locales/<locale>/<namespace>.yaml, embedded in the binary and served through
// golang.org/x/text/message printers.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains all locale catalogs
type Bundle struct {
	locales map[string]map[string]string // locale -> key -> message
	builder *catalog.Builder
	tags    []language.Tag // base locale first
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", p, locale, err)
	}
	if ns := strings.TrimSpace(file.Namespace); ns != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, ns, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// build registers all messages with a catalog builder and prepares locale matching
func (b *Bundle) build() error {
	b.builder = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	b.tags = []language.Tag{language.MustParse(BaseLocale)}
	for _, locale := range b.Locales() {
		tag := language.MustParse(locale)
		if locale != BaseLocale {
			b.tags = append(b.tags, tag)
		}
		for key, msg := range b.locales[locale] {
			// messages are plain text, not format strings
			if err := b.builder.SetString(tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
				return fmt.Errorf("register %s message %q: %w", locale, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	res := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		res = append(res, locale)
	}
	sort.Strings(res)
	return res
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Translator returns the translator of the closest supported locale. Unparsable or
// unsupported locales get the base locale.
func (b *Bundle) Translator(locale string) *Translator {
	tag := b.tags[0]
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, _ := b.matcher.Match(requested)
		tag = b.tags[idx]
	}

	return &Translator{
		locale:   tag.String(),
		printer:  message.NewPrinter(tag, message.Catalog(b.builder)),
		messages: b.locales[tag.String()],
		base:     b.locales[BaseLocale],
	}
}

// Translator translates messages of a single locale. It implements listview.Translator.
type Translator struct {
	locale   string
	printer  *message.Printer
	messages map[string]string
	base     map[string]string
}

// Locale returns the matched locale
func (t *Translator) Locale() string {
	return t.locale
}

// Translate returns the locale message, then the base locale message, and the input
// unchanged when neither has it.
func (t *Translator) Translate(msg string) string {
	if _, ok := t.messages[msg]; ok {
		return t.printer.Sprintf(msg)
	}
	if v, ok := t.base[msg]; ok {
		return v
	}
	return msg
}
