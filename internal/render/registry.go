package render

import "go.withmatt.com/narrow/internal/navigate"

// Registry keeps the latest table for each list and answers height queries
// in viewport units.
type Registry struct {
	lineHeight int
	tables     map[string]*Table
}

var _ navigate.ContentHeights = (*Registry)(nil)

func NewRegistry(lineHeight int) *Registry {
	return &Registry{
		lineHeight: max(lineHeight, 1),
		tables:     make(map[string]*Table),
	}
}

func (r *Registry) Put(t *Table) {
	r.tables[t.Name] = t
}

func (r *Registry) Get(name string) (*Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// ContentHeight is zero for tables that were never laid out.
func (r *Registry) ContentHeight(table string) float64 {
	return float64(r.tables[table].Height() * r.lineHeight)
}
