// Package table is a headless table engine: it derives filtered, sorted and
// paged rows from a data slice and a State, and never mutates the data.
package table

import (
	"strconv"

	"golang.org/x/text/language"
)

type Row[T any] struct {
	ID       string
	Index    int
	Original T
}

type Options[T any] struct {
	Data    []T
	Columns []ColumnDef[T]
	// GetRowID keys rows for selection; the row index is used when nil.
	GetRowID func(row T, index int) string
	State    State
	// Language drives string collation; English when zero.
	Language language.Tag
}

type Table[T any] struct {
	data     []T
	columns  []ColumnDef[T]
	rowID    func(T, int) string
	state    State
	language language.Tag
}

func New[T any](opts Options[T]) *Table[T] {
	t := &Table[T]{
		data:     opts.Data,
		columns:  opts.Columns,
		rowID:    opts.GetRowID,
		state:    opts.State.clone(),
		language: opts.Language,
	}
	if t.rowID == nil {
		t.rowID = func(_ T, i int) string { return strconv.Itoa(i) }
	}
	if t.language == language.Und {
		t.language = language.English
	}
	return t
}

// State returns a copy of the current view state.
func (t *Table[T]) State() State {
	return t.state.clone()
}

func (t *Table[T]) AllColumns() []Column[T] {
	cols := make([]Column[T], 0, len(t.columns))
	for _, def := range t.columns {
		cols = append(cols, Column[T]{def: def, table: t})
	}
	return cols
}

func (t *Table[T]) VisibleColumns() []Column[T] {
	return t.columnsWhere(Column[T].IsVisible)
}

func (t *Table[T]) HideableColumns() []Column[T] {
	return t.columnsWhere(Column[T].CanHide)
}

func (t *Table[T]) Column(id string) (Column[T], bool) {
	for _, def := range t.columns {
		if def.ID == id {
			return Column[T]{def: def, table: t}, true
		}
	}
	return Column[T]{}, false
}

func (t *Table[T]) columnsWhere(keep func(Column[T]) bool) []Column[T] {
	cols := make([]Column[T], 0, len(t.columns))
	for _, c := range t.AllColumns() {
		if keep(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Value is the accessor value of row for column id, nil for display columns.
func (t *Table[T]) Value(row Row[T], id string) any {
	c, ok := t.Column(id)
	if !ok || c.def.Accessor == nil {
		return nil
	}
	return c.def.Accessor(row.Original)
}

func (t *Table[T]) SetSorting(s SortingState) {
	t.state.Sorting = append(SortingState(nil), s...)
}

// ToggleSorting advances column id along its sort cycle. Without multi the
// column becomes the only sorted one.
func (t *Table[T]) ToggleSorting(id string, multi bool) {
	c, ok := t.Column(id)
	if !ok || !c.CanSort() {
		return
	}
	next := c.NextSortDirection()
	if !multi {
		if next == SortNone {
			t.state.Sorting = nil
			return
		}
		t.state.Sorting = SortingState{{ID: id, Desc: next == SortDesc}}
		return
	}

	sorting := make(SortingState, 0, len(t.state.Sorting)+1)
	found := false
	for _, s := range t.state.Sorting {
		if s.ID != id {
			sorting = append(sorting, s)
			continue
		}
		found = true
		if next != SortNone {
			sorting = append(sorting, ColumnSort{ID: id, Desc: next == SortDesc})
		}
	}
	if !found && next != SortNone {
		sorting = append(sorting, ColumnSort{ID: id, Desc: next == SortDesc})
	}
	t.state.Sorting = sorting
}

// SetColumnFilter sets the filter of column id; an empty value removes it.
// The page index goes back to the first page.
func (t *Table[T]) SetColumnFilter(id, value string) {
	filters := make(ColumnFiltersState, 0, len(t.state.ColumnFilters)+1)
	for _, f := range t.state.ColumnFilters {
		if f.ID != id {
			filters = append(filters, f)
		}
	}
	if value != "" {
		filters = append(filters, ColumnFilter{ID: id, Value: value})
	}
	t.state.ColumnFilters = filters
	t.state.Pagination.PageIndex = 0
}

func (t *Table[T]) ToggleColumnVisibility(id string, visible bool) {
	c, ok := t.Column(id)
	if !ok || !c.CanHide() {
		return
	}
	if visible {
		delete(t.state.ColumnVisibility, id)
		return
	}
	t.state.ColumnVisibility[id] = false
}

func (t *Table[T]) ToggleRowSelected(id string, selected bool) {
	if selected {
		t.state.RowSelection[id] = true
		return
	}
	delete(t.state.RowSelection, id)
}

func (t *Table[T]) IsRowSelected(id string) bool {
	return t.state.RowSelection[id]
}

func (t *Table[T]) ToggleAllPageRowsSelected(selected bool) {
	for _, r := range t.RowModel() {
		t.ToggleRowSelected(r.ID, selected)
	}
}

func (t *Table[T]) IsAllPageRowsSelected() bool {
	rows := t.RowModel()
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if !t.IsRowSelected(r.ID) {
			return false
		}
	}
	return true
}

func (t *Table[T]) IsSomePageRowsSelected() bool {
	if t.IsAllPageRowsSelected() {
		return false
	}
	for _, r := range t.RowModel() {
		if t.IsRowSelected(r.ID) {
			return true
		}
	}
	return false
}

// HeaderCheckState is the tri-state of a select-all-on-page checkbox.
func (t *Table[T]) HeaderCheckState() CheckState {
	switch {
	case t.IsAllPageRowsSelected():
		return Checked
	case t.IsSomePageRowsSelected():
		return Indeterminate
	default:
		return Unchecked
	}
}

func (t *Table[T]) PageIndex() int { return t.state.Pagination.PageIndex }

func (t *Table[T]) PageSize() int { return t.state.Pagination.PageSize }

func (t *Table[T]) SetPageIndex(i int) {
	if i < 0 {
		i = 0
	}
	t.state.Pagination.PageIndex = i
}

func (t *Table[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	t.state.Pagination.PageSize = size
	t.state.Pagination.PageIndex = 0
}

func (t *Table[T]) PageCount() int {
	n := len(t.FilteredRows())
	size := t.state.Pagination.PageSize
	return (n + size - 1) / size
}

func (t *Table[T]) CanPreviousPage() bool {
	return t.state.Pagination.PageIndex > 0
}

func (t *Table[T]) CanNextPage() bool {
	return t.state.Pagination.PageIndex < t.PageCount()-1
}

func (t *Table[T]) NextPage() {
	if t.CanNextPage() {
		t.state.Pagination.PageIndex++
	}
}

func (t *Table[T]) PreviousPage() {
	if t.CanPreviousPage() {
		t.state.Pagination.PageIndex--
	}
}
