package table

const DefaultPageSize = 10

type ColumnSort struct {
	ID   string
	Desc bool
}

type SortingState []ColumnSort

type ColumnFilter struct {
	ID    string
	Value string
}

type ColumnFiltersState []ColumnFilter

// VisibilityState maps column id to visibility; absent ids are visible.
type VisibilityState map[string]bool

// RowSelectionState holds the ids of selected rows.
type RowSelectionState map[string]bool

type PaginationState struct {
	PageIndex int
	PageSize  int
}

type State struct {
	Sorting          SortingState
	ColumnFilters    ColumnFiltersState
	ColumnVisibility VisibilityState
	RowSelection     RowSelectionState
	Pagination       PaginationState
}

func (s State) clone() State {
	out := State{
		Sorting:          append(SortingState(nil), s.Sorting...),
		ColumnFilters:    append(ColumnFiltersState(nil), s.ColumnFilters...),
		ColumnVisibility: make(VisibilityState, len(s.ColumnVisibility)),
		RowSelection:     make(RowSelectionState, len(s.RowSelection)),
		Pagination:       s.Pagination,
	}
	for k, v := range s.ColumnVisibility {
		out.ColumnVisibility[k] = v
	}
	for k, v := range s.RowSelection {
		if v {
			out.RowSelection[k] = true
		}
	}
	if out.Pagination.PageSize <= 0 {
		out.Pagination.PageSize = DefaultPageSize
	}
	if out.Pagination.PageIndex < 0 {
		out.Pagination.PageIndex = 0
	}
	return out
}

type SortDirection uint8

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return ""
	}
}

type CheckState uint8

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

func (c CheckState) String() string {
	switch c {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}
