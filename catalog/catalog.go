// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Category identifies one question of the poll.
type Category string

const (
	Winner       Category = "winner"
	OverUnder    Category = "overUnder"
	MVP          Category = "mvp"
	Receiving    Category = "receiving"
	Rushing      Category = "rushing"
	BadBunny     Category = "badBunny"
	PatriotsLove Category = "patriotsLove"
)

// ScoringCategories are compared against the official results, in display order.
var ScoringCategories = []Category{Winner, OverUnder, MVP, Receiving, Rushing, BadBunny}

// Categories lists every category, scoring ones first, then the fun-only one.
var Categories = []Category{Winner, OverUnder, MVP, Receiving, Rushing, BadBunny, PatriotsLove}

// Scored reports whether the category counts towards a score.
func (c Category) Scored() bool {
	return c != PatriotsLove && c.Valid()
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	ErrMissingCategory = errors.New("catalog: missing category")
	ErrEmptyCategory   = errors.New("catalog: category has no options")
	ErrDuplicateOption = errors.New("catalog: duplicate option")
	ErrUnknownCategory = errors.New("catalog: unknown category")
)

//go:embed default.toml
var defaultTOML []byte

type Team struct {
	Key  string `toml:"key" json:"key"`
	Name string `toml:"name" json:"name"`
	Logo string `toml:"logo" json:"logo"`
}

// Event describes the single game the poll is about.
type Event struct {
	Title     string  `json:"title"`
	Name      string  `json:"event"`
	Date      string  `json:"date"`
	OverUnder float64 `json:"overUnder"`
	Teams     []Team  `json:"teams"`
}

type categorySpec struct {
	label       string
	exportLabel string
	options     []string
	index       map[string]struct{}
}

// Catalog is the closed, ordered set of valid picks per category.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	Event      Event
	ExportName string

	categories map[Category]categorySpec
}

type fileCategory struct {
	Label       string   `toml:"label"`
	ExportLabel string   `toml:"export_label"`
	Options     []string `toml:"options"`
}

type file struct {
	Title      string                  `toml:"title"`
	Event      string                  `toml:"event"`
	Date       string                  `toml:"date"`
	OverUnder  float64                 `toml:"over_under"`
	ExportName string                  `toml:"export_name"`
	Teams      []Team                  `toml:"teams"`
	Categories map[string]fileCategory `toml:"categories"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a TOML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML catalog. Every category must be present
// with at least one option and no duplicates.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for key := range f.Categories {
		if !Category(key).Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
	}

	c := &Catalog{
		Event: Event{
			Title:     f.Title,
			Name:      f.Event,
			Date:      f.Date,
			OverUnder: f.OverUnder,
			Teams:     f.Teams,
		},
		ExportName: f.ExportName,
		categories: make(map[Category]categorySpec, len(Categories)),
	}
	if c.ExportName == "" {
		c.ExportName = "tippspiel"
	}

	for _, cat := range Categories {
		fc, ok := f.Categories[string(cat)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCategory, cat)
		}
		if len(fc.Options) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}

		spec := categorySpec{
			label:       fc.Label,
			exportLabel: fc.ExportLabel,
			options:     make([]string, 0, len(fc.Options)),
			index:       make(map[string]struct{}, len(fc.Options)),
		}
		for _, opt := range fc.Options {
			if _, dup := spec.index[opt]; dup {
				return nil, fmt.Errorf("%w: %s %q", ErrDuplicateOption, cat, opt)
			}
			spec.index[opt] = struct{}{}
			spec.options = append(spec.options, opt)
		}
		if spec.label == "" {
			spec.label = string(cat)
		}
		if spec.exportLabel == "" {
			spec.exportLabel = spec.label
		}
		c.categories[cat] = spec
	}

	return c, nil
}

// Options returns the declared options of a category in catalog order.
// The returned slice is a copy.
func (c *Catalog) Options(cat Category) []string {
	spec, ok := c.categories[cat]
	if !ok {
		return nil
	}
	out := make([]string, len(spec.options))
	copy(out, spec.options)
	return out
}

// Contains reports whether value is a declared option of cat.
func (c *Catalog) Contains(cat Category, value string) bool {
	spec, ok := c.categories[cat]
	if !ok {
		return false
	}
	_, ok = spec.index[value]
	return ok
}

func (c *Catalog) Label(cat Category) string {
	return c.categories[cat].label
}

// ExportLabel is the column header used by spreadsheet and CSV exports.
func (c *Catalog) ExportLabel(cat Category) string {
	return c.categories[cat].exportLabel
}
