package thematic

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/matchday/pkg/event"
)

// Content categories.
const (
	CategoryHistory = "history"
	CategoryTip     = "tip"
	CategoryFact    = "fact"
	CategoryRule    = "rule"
)

var categories = map[string]struct{}{
	CategoryHistory: {},
	CategoryTip:     {},
	CategoryFact:    {},
	CategoryRule:    {},
}

//go:embed default.yaml
var defaultContent []byte

// Item is one "info of the day" snippet.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Text     string `yaml:"text" json:"text"`
	// On ties the item to a day, "MM-DD" every year or "YYYY-MM-DD" once.
	On string `yaml:"on,omitempty" json:"on,omitempty"`
}

// Title is the display heading for the item category.
func (i Item) Title() string {
	switch i.Category {
	case CategoryHistory:
		return "On this day"
	case CategoryTip:
		return "Football tip"
	case CategoryFact:
		return "Did you know"
	case CategoryRule:
		return "Rules of the game"
	}
	if i.Category == "" {
		return "Info"
	}
	return strings.ToUpper(i.Category[:1]) + i.Category[1:]
}

// Default returns the built-in pool.
func Default() []Item {
	items, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("thematic: built-in content: %v", err))
	}
	return items
}

// LoadFile reads a content source, a YAML or JSON sequence of items. An
// empty path selects the built-in pool.
func LoadFile(path string) ([]Item, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thematic: read content: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("thematic: %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes and validates a content document. JSON parses as YAML.
func Parse(data []byte) ([]Item, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		it := &items[i]
		it.ID = strings.TrimSpace(it.ID)
		it.Category = strings.ToLower(strings.TrimSpace(it.Category))
		it.Text = strings.TrimSpace(it.Text)
		it.On = strings.TrimSpace(it.On)
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
		if _, ok := categories[it.Category]; !ok {
			return nil, fmt.Errorf("item %q: unknown category %q", it.ID, it.Category)
		}
		if it.Text == "" {
			return nil, fmt.Errorf("item %q: empty text", it.ID)
		}
		if it.On != "" && !validOn(it.On) {
			return nil, fmt.Errorf("item %q: on %q must be MM-DD or YYYY-MM-DD", it.ID, it.On)
		}
	}
	return items, nil
}

func validOn(on string) bool {
	if len(on) == len("01-02") {
		// Any leap year accepts 02-29.
		_, err := event.ParseDate("2000-" + on)
		return err == nil
	}
	_, err := event.ParseDate(on)
	return err == nil
}
