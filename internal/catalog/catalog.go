package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// ErrUnknownPhenomenon indicates the term is not in the catalog
var ErrUnknownPhenomenon = errors.New("unknown phenomenon")

// Catalog is an in-memory library of consciousness phenomena kept in
// insertion order
type Catalog struct {
	entries []models.Phenomenon
	byID    map[int]int
	byTerm  map[string]int
}

// Filter narrows List results. Phase takes precedence over Tag; Limit
// caps the result when positive.
type Filter struct {
	Phase string
	Tag   string
	Limit int
}

// New creates a catalog holding the core phenomena
func New() *Catalog {
	return NewWith(CorePhenomena())
}

// NewWith creates a catalog from the given entries
func NewWith(entries []models.Phenomenon) *Catalog {
	c := &Catalog{
		entries: entries,
		byID:    make(map[int]int, len(entries)),
		byTerm:  make(map[string]int, len(entries)),
	}
	for i, p := range entries {
		c.byID[p.ID] = i
		c.byTerm[strings.ToLower(p.Term)] = i
	}
	return c
}

// All returns every entry in insertion order
func (c *Catalog) All() []models.Phenomenon {
	return c.entries
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry whose term matches case-insensitively
func (c *Catalog) Get(term string) (models.Phenomenon, error) {
	idx, ok := c.byTerm[strings.ToLower(term)]
	if !ok {
		return models.Phenomenon{}, fmt.Errorf("%w: %q", ErrUnknownPhenomenon, term)
	}
	return c.entries[idx], nil
}

// GetByID returns the entry with the given id
func (c *Catalog) GetByID(id int) (models.Phenomenon, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Phenomenon{}, false
	}
	return c.entries[idx], true
}

// List returns entries matching the filter in insertion order. An
// unknown phase or tag yields an empty result, not an error.
func (c *Catalog) List(f Filter) []models.Phenomenon {
	var matched []models.Phenomenon

	switch {
	case f.Phase != "":
		for _, p := range c.entries {
			if p.Phase == f.Phase {
				matched = append(matched, p)
			}
		}
	case f.Tag != "":
		for _, p := range c.entries {
			if hasTag(p, f.Tag) {
				matched = append(matched, p)
			}
		}
	default:
		matched = append(matched, c.entries...)
	}

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched
}

// Related resolves the related entries for a term. Dangling ids are
// skipped.
func (c *Catalog) Related(term string) ([]models.Phenomenon, error) {
	entry, err := c.Get(term)
	if err != nil {
		return nil, err
	}

	var related []models.Phenomenon
	for _, id := range entry.RelatedTo {
		if p, ok := c.GetByID(id); ok {
			related = append(related, p)
		}
	}
	return related, nil
}

func hasTag(p models.Phenomenon, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
