package listing

import (
	"sort"
	"strconv"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/table"
)

const (
	EmptyText         = "No books found."
	LoadingText       = "Loading books..."
	FilterPlaceholder = "Filter titles..."
)

type Options struct {
	// BasePath is the path the page links back to.
	BasePath        string
	DefaultPageSize int
	// ShowErrors renders the fetch failure next to the empty table.
	ShowErrors bool
}

type HeaderCell struct {
	ID        string
	Label     string
	Sortable  bool
	Direction table.SortDirection
	// SortOrder is 1-based within a multi-column sort, 0 otherwise.
	SortOrder int
	Href      string
	MultiHref string
	Select    *Checkbox
}

type RowView struct {
	ID       string
	Selected bool
	Cells    []Cell
}

type ColumnToggle struct {
	ID      string
	Visible bool
	Href    string
}

type Field struct {
	Name  string
	Value string
}

type Page struct {
	Loading    bool
	FetchError string

	FilterParam string
	FilterValue string
	// Hidden carries the rest of the state through the filter form.
	Hidden  []Field
	Toggles []ColumnToggle

	Headers []HeaderCell
	Rows    []RowView
	ColSpan int

	SelectedCount int
	FilteredCount int

	PageNumber int
	PageCount  int
	CanPrev    bool
	CanNext    bool
	PrevHref   string
	NextHref   string
}

func (p Page) Empty() bool { return len(p.Rows) == 0 }

func LoadingPage() Page {
	return Page{Loading: true}
}

// Build derives the page from the fetched books and the view state.
func Build(res Result, st table.State, f *Formatter, opts Options) Page {
	cols := Columns()
	b := &builder{
		books: res.Books,
		cols:  cols,
		defs:  ColumnDefs(cols),
		byID:  make(map[string]Column, len(cols)),
		f:     f,
		opts:  opts,
	}
	for _, c := range cols {
		b.byID[c.Def.ID] = c
	}
	b.tb = b.table(st)
	if pc := b.tb.PageCount(); b.tb.PageIndex() >= pc {
		b.tb.SetPageIndex(pc - 1)
	}

	p := Page{
		FilterParam:   FilterColumn,
		Hidden:        b.hidden(),
		Toggles:       b.toggles(),
		Headers:       b.headers(),
		Rows:          b.rows(),
		ColSpan:       len(cols),
		SelectedCount: len(b.tb.FilteredSelectedRows()),
		FilteredCount: len(b.tb.FilteredRows()),
		PageNumber:    b.tb.PageIndex() + 1,
		PageCount:     b.tb.PageCount(),
		CanPrev:       b.tb.CanPreviousPage(),
		CanNext:       b.tb.CanNextPage(),
	}
	if c, ok := b.tb.Column(FilterColumn); ok {
		p.FilterValue = c.FilterValue()
	}
	if p.CanPrev {
		p.PrevHref = b.link(func(t *table.Table[model.BookItem]) { t.PreviousPage() })
	}
	if p.CanNext {
		p.NextHref = b.link(func(t *table.Table[model.BookItem]) { t.NextPage() })
	}
	if opts.ShowErrors && res.Err != nil {
		p.FetchError = res.Err.Error()
	}
	return p
}

type builder struct {
	books []model.BookItem
	cols  []Column
	defs  []table.ColumnDef[model.BookItem]
	byID  map[string]Column
	f     *Formatter
	opts  Options
	tb    *table.Table[model.BookItem]
}

func rowID(b model.BookItem, i int) string {
	if b.ID == "" {
		return "#" + strconv.Itoa(i)
	}
	return b.ID
}

func (b *builder) table(st table.State) *table.Table[model.BookItem] {
	return table.New(table.Options[model.BookItem]{
		Data:     b.books,
		Columns:  b.defs,
		GetRowID: rowID,
		State:    st,
		Language: b.f.Language(),
	})
}

// link is the URL of the state reached by applying mutate to the current one.
func (b *builder) link(mutate func(t *table.Table[model.BookItem])) string {
	next := b.table(b.tb.State())
	mutate(next)
	q := Encode(next.State(), b.opts.DefaultPageSize)
	if len(q) == 0 {
		return b.opts.BasePath
	}
	return b.opts.BasePath + "?" + q.Encode()
}

func (b *builder) headers() []HeaderCell {
	visible := b.tb.VisibleColumns()
	multi := len(b.tb.State().Sorting) > 1
	out := make([]HeaderCell, 0, len(visible))
	for _, c := range visible {
		id := c.ID()
		if id == SelectColumn {
			all := b.tb.IsAllPageRowsSelected()
			out = append(out, HeaderCell{
				ID: id,
				Select: &Checkbox{
					State: b.tb.HeaderCheckState(),
					Href:  b.link(func(t *table.Table[model.BookItem]) { t.ToggleAllPageRowsSelected(!all) }),
				},
			})
			continue
		}
		h := HeaderCell{
			ID:        id,
			Label:     c.Header(),
			Sortable:  c.CanSort(),
			Direction: c.SortDirection(),
		}
		if multi && h.Direction != table.SortNone {
			h.SortOrder = c.SortIndex() + 1
		}
		if h.Sortable {
			h.Href = b.link(func(t *table.Table[model.BookItem]) { t.ToggleSorting(id, false) })
			h.MultiHref = b.link(func(t *table.Table[model.BookItem]) { t.ToggleSorting(id, true) })
		}
		out = append(out, h)
	}
	return out
}

func (b *builder) rows() []RowView {
	visible := b.tb.VisibleColumns()
	page := b.tb.RowModel()
	out := make([]RowView, 0, len(page))
	for _, r := range page {
		id := r.ID
		selected := b.tb.IsRowSelected(id)
		rv := RowView{ID: id, Selected: selected, Cells: make([]Cell, 0, len(visible))}
		for _, c := range visible {
			if c.ID() == SelectColumn {
				state := table.Unchecked
				if selected {
					state = table.Checked
				}
				rv.Cells = append(rv.Cells, Cell{
					Kind: CellCheckbox,
					Checkbox: &Checkbox{
						State: state,
						Href:  b.link(func(t *table.Table[model.BookItem]) { t.ToggleRowSelected(id, !selected) }),
					},
				})
				continue
			}
			rv.Cells = append(rv.Cells, b.byID[c.ID()].Render(b.f, r.Original))
		}
		out = append(out, rv)
	}
	return out
}

func (b *builder) toggles() []ColumnToggle {
	hideable := b.tb.HideableColumns()
	out := make([]ColumnToggle, 0, len(hideable))
	for _, c := range hideable {
		id, visible := c.ID(), c.IsVisible()
		out = append(out, ColumnToggle{
			ID:      id,
			Visible: visible,
			Href:    b.link(func(t *table.Table[model.BookItem]) { t.ToggleColumnVisibility(id, !visible) }),
		})
	}
	return out
}

// hidden lists the state the filter form has to resubmit; the page resets.
func (b *builder) hidden() []Field {
	st := b.tb.State()
	st.ColumnFilters = nil
	st.Pagination.PageIndex = 0
	q := Encode(st, b.opts.DefaultPageSize)
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Field, 0, len(names))
	for _, name := range names {
		out = append(out, Field{Name: name, Value: q.Get(name)})
	}
	return out
}
