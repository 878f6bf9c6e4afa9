// Package localization provides alert strings for error codes.
//
// Strings are keyed by code symbol, mirroring the "<symbol>.title" and
// "<symbol>.message" keys used by payment UIs. A missing entry falls back to
// the "unknown" entry, and then to the symbol itself.
package localization

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// Entry is the alert text for one code.
type Entry struct {
	Title   string `yaml:"title" mapstructure:"title"`
	Message string `yaml:"message" mapstructure:"message"`
}

// Catalog is a Localizer backed by an in-memory table. Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	language string
	entries  map[string]Entry
}

// NewCatalog builds a catalog from entries keyed by code symbol.
func NewCatalog(language string, entries map[string]Entry) *Catalog {
	c := &Catalog{language: language, entries: make(map[string]Entry, len(entries))}
	for k, v := range entries {
		c.entries[strings.ToLower(k)] = v
	}
	return c
}

// LoadCatalog reads a YAML or JSON file of the form
//
//	language: en
//	alerts:
//	  invalid_card_number:
//	    title: Invalid card
//	    message: Please check the card number.
//
// Entries from the file override the built-in defaults.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file struct {
		Language string           `mapstructure:"language"`
		Alerts   map[string]Entry `mapstructure:"alerts"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog %s: %w", path, err)
	}
	for symbol := range file.Alerts {
		if _, ok := codes.ParseSymbol(strings.ToLower(symbol)); !ok {
			return nil, fmt.Errorf("catalog %s: unknown error code %q", path, symbol)
		}
	}
	c := DefaultCatalog()
	if file.Language != "" {
		c.language = file.Language
	}
	c.Merge(file.Alerts)
	return c, nil
}

// Language returns the catalog language tag.
func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// Merge adds or replaces entries. Empty fields keep the existing text.
func (c *Catalog) Merge(entries map[string]Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range entries {
		k = strings.ToLower(k)
		cur := c.entries[k]
		if v.Title != "" {
			cur.Title = v.Title
		}
		if v.Message != "" {
			cur.Message = v.Message
		}
		c.entries[k] = cur
	}
}

// Title implements recovery.Localizer.
func (c *Catalog) Title(code codes.ErrorCode) string {
	return c.lookup(code, func(e Entry) string { return e.Title })
}

// Message implements recovery.Localizer.
func (c *Catalog) Message(code codes.ErrorCode) string {
	return c.lookup(code, func(e Entry) string { return e.Message })
}

func (c *Catalog) lookup(code codes.ErrorCode, field func(Entry) string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s := field(c.entries[code.Symbol()]); s != "" {
		return s
	}
	if s := field(c.entries[codes.Unknown.Symbol()]); s != "" {
		return s
	}
	return code.String()
}

// TitleKey and MessageKey return the lookup keys hosts with their own string
// tables should use.
func TitleKey(code codes.ErrorCode) string   { return code.Symbol() + ".title" }
func MessageKey(code codes.ErrorCode) string { return code.Symbol() + ".message" }
