// Package i18n holds the UI string dictionaries. Dictionaries are embedded
// YAML, one file per language; lookups fall back to the default language and
// finally to the key itself so a missing translation never blanks the UI.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Dict is the loaded dictionary set.
type Dict struct {
	def    string
	tables map[string]map[string]string
}

// Load parses every embedded locale file. defaultLang must be one of them.
func Load(defaultLang string) (*Dict, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	d := &Dict{def: defaultLang, tables: make(map[string]map[string]string, len(entries))}
	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), ".yaml")
		raw, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("locale %s: %w", lang, err)
		}
		d.tables[lang] = table
	}
	if _, ok := d.tables[defaultLang]; !ok {
		return nil, fmt.Errorf("default locale %q not embedded", defaultLang)
	}
	return d, nil
}

// Langs lists the loaded language codes.
func (d *Dict) Langs() []string {
	out := make([]string, 0, len(d.tables))
	for lang := range d.tables {
		out = append(out, lang)
	}
	return out
}

// Has reports whether a language is loaded.
func (d *Dict) Has(lang string) bool {
	_, ok := d.tables[lang]
	return ok
}

// T resolves key in lang, falling back to the default language, then to the
// key itself.
func (d *Dict) T(lang, key string) string {
	if table, ok := d.tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := d.tables[d.def][key]; ok {
		return v
	}
	return key
}
