// Package i18n resolves canonical holiday names to localized display names.
//
// Messages live in embedded YAML catalogs, one file per locale and
// namespace: locales/<locale>/<namespace>.yaml. The canonical key of a
// message is its English text, so a missing translation falls back to the
// key itself.
package i18n

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BaseLocale is the locale of the canonical keys.
const BaseLocale = "en"

// Resolver returns the display name of key in locale, or key when there is
// no translation.
type Resolver interface {
	Resolve(locale, key string) string
}

// Identity is a Resolver that never translates.
type Identity struct{}

// Resolve returns key.
func (Identity) Resolve(_, key string) string { return key }

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Catalog holds the messages of every locale.
type Catalog struct {
	locales    map[string]map[string]string
	namespaces map[string][]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := LoadEmbedded()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalogs from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "glob locale catalogs")
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{
		locales:    map[string]map[string]string{},
		namespaces: map[string][]string{},
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog %s", path)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrapf(err, "parse catalog %s", path)
		}
		if err := c.addFile(path, file); err != nil {
			return nil, err
		}
	}

	if !c.HasLocale(BaseLocale) {
		return nil, errors.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return c, nil
}

func (c *Catalog) addFile(path string, file catalogFile) error {
	localeFromPath := filepath.Base(filepath.Dir(path))
	namespaceFromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return errors.Errorf("catalog %s: locale is required", path)
	}
	if locale != localeFromPath {
		return errors.Errorf("catalog %s: locale %q must match path locale %q", path, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return errors.Errorf("catalog %s: namespace %q must match file name %q", path, namespace, namespaceFromPath)
	}

	messages, ok := c.locales[locale]
	if !ok {
		messages = map[string]string{}
		c.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.Errorf("catalog %s: message key cannot be blank", path)
		}
		if _, exists := messages[key]; exists {
			return errors.Errorf("catalog %s: duplicate key %q in locale %q", path, key, locale)
		}
		messages[key] = value
	}
	c.namespaces[locale] = append(c.namespaces[locale], namespace)
	return nil
}

// Resolve returns the message for key in locale. The base locale is tried
// next, then key itself is returned.
func (c *Catalog) Resolve(locale, key string) string {
	if msg, ok := c.Message(locale, key); ok {
		return msg
	}
	return key
}

// Message returns the message for key in locale with base-locale fallback.
func (c *Catalog) Message(locale, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	if msg, ok := c.locales[strings.TrimSpace(locale)][key]; ok {
		return msg, true
	}
	msg, ok := c.locales[BaseLocale][key]
	return msg, ok
}

// HasLocale reports whether the catalog defines locale.
func (c *Catalog) HasLocale(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale identifiers.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Namespaces returns the namespaces loaded for locale.
func (c *Catalog) Namespaces(locale string) []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.namespaces[strings.TrimSpace(locale)]...)
}
