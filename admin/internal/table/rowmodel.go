package table

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
)

func (t *Table[T]) CoreRows() []Row[T] {
	rows := make([]Row[T], 0, len(t.data))
	for i, d := range t.data {
		rows = append(rows, Row[T]{ID: t.rowID(d, i), Index: i, Original: d})
	}
	return rows
}

// FilteredRows keeps the rows whose every filtered column contains the filter
// value, ignoring case.
func (t *Table[T]) FilteredRows() []Row[T] {
	type active struct {
		accessor func(T) any
		needle   string
	}
	fold := cases.Fold()
	filters := make([]active, 0, len(t.state.ColumnFilters))
	for _, f := range t.state.ColumnFilters {
		c, ok := t.Column(f.ID)
		if !ok || !c.CanFilter() || f.Value == "" {
			continue
		}
		filters = append(filters, active{accessor: c.def.Accessor, needle: fold.String(f.Value)})
	}

	core := t.CoreRows()
	if len(filters) == 0 {
		return core
	}
	rows := make([]Row[T], 0, len(core))
	for _, r := range core {
		keep := true
		for _, f := range filters {
			if !strings.Contains(fold.String(stringify(f.accessor(r.Original))), f.needle) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, r)
		}
	}
	return rows
}

// SortedRows orders the filtered rows by the sorting state, stable with respect
// to the original order. Nil values go last in either direction.
func (t *Table[T]) SortedRows() []Row[T] {
	rows := t.FilteredRows()
	type key struct {
		accessor func(T) any
		desc     bool
	}
	keys := make([]key, 0, len(t.state.Sorting))
	for _, s := range t.state.Sorting {
		c, ok := t.Column(s.ID)
		if !ok || !c.CanSort() {
			continue
		}
		keys = append(keys, key{accessor: c.def.Accessor, desc: s.Desc})
	}
	if len(keys) == 0 {
		return rows
	}

	col := collate.New(t.language, collate.IgnoreCase, collate.Numeric)
	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			a, b := k.accessor(rows[i].Original), k.accessor(rows[j].Original)
			switch {
			case a == nil && b == nil:
				continue
			case a == nil:
				return false
			case b == nil:
				return true
			}
			c := compare(col, a, b)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return rows
}

// RowModel is the current page of the sorted rows.
func (t *Table[T]) RowModel() []Row[T] {
	rows := t.SortedRows()
	p := t.state.Pagination
	if p.PageSize <= 0 || p.PageIndex < 0 || p.PageIndex >= (len(rows)+p.PageSize-1)/p.PageSize {
		return []Row[T]{}
	}
	start := p.PageIndex * p.PageSize
	end := start + p.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func (t *Table[T]) FilteredSelectedRows() []Row[T] {
	filtered := t.FilteredRows()
	rows := make([]Row[T], 0, len(t.state.RowSelection))
	for _, r := range filtered {
		if t.IsRowSelected(r.ID) {
			rows = append(rows, r)
		}
	}
	return rows
}

func compare(col *collate.Collator, a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	switch av := a.(type) {
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return col.CompareString(stringify(a), stringify(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
