package table_test

import (
	"fmt"
	"testing"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/table"
	"github.com/stretchr/testify/require"
)

type book struct {
	ID    string
	Title string
	Price float64
	Views any
}

func columns() []table.ColumnDef[book] {
	return []table.ColumnDef[book]{
		{ID: "select", DisableSorting: true, DisableHiding: true},
		{ID: "title", Header: "Title", Accessor: func(b book) any { return b.Title }},
		{ID: "price", Header: "Price", Accessor: func(b book) any { return b.Price }},
		{ID: "views", Header: "Views", Accessor: func(b book) any { return b.Views }},
	}
}

func books(n int) []book {
	out := make([]book, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, book{ID: fmt.Sprintf("b%02d", i), Title: fmt.Sprintf("Book %d", i), Price: float64(i)})
	}
	return out
}

func newTable(data []book, st table.State) *table.Table[book] {
	return table.New(table.Options[book]{
		Data:     data,
		Columns:  columns(),
		GetRowID: func(b book, _ int) string { return b.ID },
		State:    st,
	})
}

func ids(rows []table.Row[book]) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()
	data := []book{
		{ID: "1", Title: "Harry Potter and the Philosopher's Stone"},
		{ID: "2", Title: "Dune"},
		{ID: "3", Title: "The Harry Hole Series"},
		{ID: "4", Title: "harry's game"},
	}
	tb := newTable(data, table.State{})
	tb.SetColumnFilter("title", "Harry")
	require.Equal(t, []string{"1", "3", "4"}, ids(tb.FilteredRows()))
	col, _ := tb.Column("title")
	require.Equal(t, "Harry", col.FilterValue())

	tb.SetColumnFilter("title", "")
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(tb.FilteredRows()))
	require.Empty(t, tb.State().ColumnFilters)

	// display columns cannot filter
	tb.SetColumnFilter("select", "x")
	require.Len(t, tb.FilteredRows(), 4)
	require.Equal(t, "Dune", data[1].Title)
}

func TestFilterResetsPage(t *testing.T) {
	t.Parallel()
	tb := newTable(books(30), table.State{Pagination: table.PaginationState{PageIndex: 2}})
	require.Equal(t, 2, tb.PageIndex())
	tb.SetColumnFilter("title", "book 1")
	require.Equal(t, 0, tb.PageIndex())
}

func TestSorting(t *testing.T) {
	t.Parallel()
	data := []book{
		{ID: "a", Title: "beta", Price: 30},
		{ID: "b", Title: "Alpha", Price: 10},
		{ID: "c", Title: "gamma", Price: 20},
		{ID: "d", Title: "alpha", Price: 5},
	}
	tb := newTable(data, table.State{Pagination: table.PaginationState{PageSize: 100}})

	tb.ToggleSorting("title", false)
	require.Equal(t, table.SortingState{{ID: "title"}}, tb.State().Sorting)
	require.Equal(t, []string{"b", "d", "a", "c"}, ids(tb.SortedRows()))

	tb.ToggleSorting("title", false)
	require.Equal(t, table.SortingState{{ID: "title", Desc: true}}, tb.State().Sorting)
	require.Equal(t, []string{"c", "a", "b", "d"}, ids(tb.SortedRows()))

	tb.ToggleSorting("title", false)
	require.Empty(t, tb.State().Sorting)
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(tb.SortedRows()))

	// numbers sort descending first
	tb.ToggleSorting("price", false)
	require.Equal(t, table.SortingState{{ID: "price", Desc: true}}, tb.State().Sorting)
	require.Equal(t, []string{"a", "c", "b", "d"}, ids(tb.SortedRows()))
	tb.ToggleSorting("price", false)
	require.Equal(t, []string{"d", "b", "c", "a"}, ids(tb.SortedRows()))

	// data order untouched
	require.Equal(t, "a", data[0].ID)

	tb.ToggleSorting("select", false)
	require.Equal(t, table.SortingState{{ID: "price"}}, tb.State().Sorting)
}

func TestMultiSorting(t *testing.T) {
	t.Parallel()
	data := []book{
		{ID: "a", Title: "same", Price: 1},
		{ID: "b", Title: "other", Price: 9},
		{ID: "c", Title: "same", Price: 3},
	}
	tb := newTable(data, table.State{})
	tb.ToggleSorting("title", false)
	tb.ToggleSorting("price", true)
	require.Equal(t, table.SortingState{{ID: "title"}, {ID: "price", Desc: true}}, tb.State().Sorting)
	require.Equal(t, []string{"b", "c", "a"}, ids(tb.SortedRows()))

	price, _ := tb.Column("price")
	require.Equal(t, 1, price.SortIndex())
	require.Equal(t, table.SortDesc, price.SortDirection())

	tb.ToggleSorting("price", true)
	tb.ToggleSorting("price", true)
	require.Equal(t, table.SortingState{{ID: "title"}}, tb.State().Sorting)
}

func TestSortingNilLast(t *testing.T) {
	t.Parallel()
	data := []book{{ID: "a", Views: nil}, {ID: "b", Views: 3}, {ID: "c", Views: 7}}
	tb := newTable(data, table.State{Sorting: table.SortingState{{ID: "views"}}})
	require.Equal(t, []string{"b", "c", "a"}, ids(tb.SortedRows()))
	tb.SetSorting(table.SortingState{{ID: "views", Desc: true}})
	require.Equal(t, []string{"c", "b", "a"}, ids(tb.SortedRows()))
}

func TestPagination(t *testing.T) {
	t.Parallel()
	tests := []struct {
		data, size, pages int
	}{
		{data: 0, size: 10, pages: 0},
		{data: 1, size: 10, pages: 1},
		{data: 10, size: 10, pages: 1},
		{data: 11, size: 10, pages: 2},
		{data: 25, size: 5, pages: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d/%d", tt.data, tt.size), func(t *testing.T) {
			t.Parallel()
			tb := newTable(books(tt.data), table.State{Pagination: table.PaginationState{PageSize: tt.size}})
			require.Equal(t, tt.pages, tb.PageCount())
			for page := 0; page < tt.pages; page++ {
				tb.SetPageIndex(page)
				require.Equal(t, page > 0, tb.CanPreviousPage(), "page %d", page)
				require.Equal(t, page < tt.pages-1, tb.CanNextPage(), "page %d", page)
			}
			if tt.pages == 0 {
				require.False(t, tb.CanNextPage())
				require.False(t, tb.CanPreviousPage())
				require.Empty(t, tb.RowModel())
			}
		})
	}
}

func TestRowModelHugePageIndex(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 25} {
		tb := newTable(books(n), table.State{Pagination: table.PaginationState{PageIndex: 922337203685477581, PageSize: 10}})
		require.Empty(t, tb.RowModel(), n)
	}
}

func TestPageNavigation(t *testing.T) {
	t.Parallel()
	tb := newTable(books(23), table.State{})
	require.Equal(t, table.DefaultPageSize, tb.PageSize())
	require.Equal(t, []string{"b00", "b01", "b02", "b03", "b04", "b05", "b06", "b07", "b08", "b09"}, ids(tb.RowModel()))
	tb.NextPage()
	tb.NextPage()
	require.Equal(t, []string{"b20", "b21", "b22"}, ids(tb.RowModel()))
	tb.NextPage()
	require.Equal(t, 2, tb.PageIndex())
	tb.PreviousPage()
	tb.PreviousPage()
	tb.PreviousPage()
	require.Equal(t, 0, tb.PageIndex())
}

func TestSelection(t *testing.T) {
	t.Parallel()
	tb := newTable(books(15), table.State{})
	require.Equal(t, table.Unchecked, tb.HeaderCheckState())

	tb.ToggleAllPageRowsSelected(!tb.IsAllPageRowsSelected())
	require.Equal(t, table.Checked, tb.HeaderCheckState())
	require.Len(t, tb.FilteredSelectedRows(), 10)

	tb.ToggleRowSelected("b03", false)
	require.Equal(t, table.Indeterminate, tb.HeaderCheckState())
	require.True(t, tb.IsSomePageRowsSelected())
	require.False(t, tb.IsAllPageRowsSelected())

	// header toggle from indeterminate selects the whole page
	tb.ToggleAllPageRowsSelected(!tb.IsAllPageRowsSelected())
	require.Equal(t, table.Checked, tb.HeaderCheckState())

	tb.NextPage()
	require.Equal(t, table.Unchecked, tb.HeaderCheckState())
	require.Len(t, tb.FilteredSelectedRows(), 10)

	tb.SetColumnFilter("title", "Book 1")
	// Book 1, Book 10..14; only "b01" is selected among them
	require.Equal(t, []string{"b01"}, ids(tb.FilteredSelectedRows()))
	require.Len(t, tb.FilteredRows(), 6)

	tb.ToggleAllPageRowsSelected(false)
	require.Empty(t, tb.FilteredSelectedRows())
	require.Len(t, tb.State().RowSelection, 9)
}

func TestVisibility(t *testing.T) {
	t.Parallel()
	tb := newTable(books(1), table.State{ColumnVisibility: table.VisibilityState{"select": false}})
	hideable := tb.HideableColumns()
	require.Len(t, hideable, 3)
	require.Len(t, tb.VisibleColumns(), 4)

	tb.ToggleColumnVisibility("price", false)
	tb.ToggleColumnVisibility("select", false)
	visible := make([]string, 0)
	for _, c := range tb.VisibleColumns() {
		visible = append(visible, c.ID())
	}
	require.Equal(t, []string{"select", "title", "views"}, visible)

	tb.ToggleColumnVisibility("price", true)
	require.Len(t, tb.VisibleColumns(), 4)
	require.Len(t, tb.AllColumns(), 4)
}

func TestStateIsCopied(t *testing.T) {
	t.Parallel()
	st := table.State{RowSelection: table.RowSelectionState{"b01": true}}
	tb := newTable(books(3), st)
	tb.ToggleRowSelected("b02", true)
	require.Len(t, st.RowSelection, 1)

	out := tb.State()
	out.RowSelection["b00"] = true
	require.False(t, tb.IsRowSelected("b00"))
}
