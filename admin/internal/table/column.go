package table

// ColumnDef describes one column. Columns without an Accessor are display
// columns: they render but can neither sort nor filter.
type ColumnDef[T any] struct {
	ID     string
	Header string
	// Accessor extracts the value used for sorting and filtering.
	Accessor       func(T) any
	DisableSorting bool
	DisableHiding  bool
}

type Column[T any] struct {
	def   ColumnDef[T]
	table *Table[T]
}

func (c Column[T]) ID() string { return c.def.ID }

func (c Column[T]) Header() string { return c.def.Header }

func (c Column[T]) Def() ColumnDef[T] { return c.def }

func (c Column[T]) CanSort() bool {
	return c.def.Accessor != nil && !c.def.DisableSorting
}

func (c Column[T]) CanFilter() bool {
	return c.def.Accessor != nil
}

func (c Column[T]) CanHide() bool {
	return !c.def.DisableHiding
}

func (c Column[T]) IsVisible() bool {
	if !c.CanHide() {
		return true
	}
	v, ok := c.table.state.ColumnVisibility[c.def.ID]
	return !ok || v
}

// SortDirection is the column's direction in the current sorting.
func (c Column[T]) SortDirection() SortDirection {
	for _, s := range c.table.state.Sorting {
		if s.ID == c.def.ID {
			if s.Desc {
				return SortDesc
			}
			return SortAsc
		}
	}
	return SortNone
}

// SortIndex is the position in a multi-column sort, -1 when unsorted.
func (c Column[T]) SortIndex() int {
	for i, s := range c.table.state.Sorting {
		if s.ID == c.def.ID {
			return i
		}
	}
	return -1
}

// FirstSortDirection is asc for string values and desc for everything else.
func (c Column[T]) FirstSortDirection() SortDirection {
	if c.def.Accessor == nil || len(c.table.data) == 0 {
		return SortAsc
	}
	if _, ok := c.def.Accessor(c.table.data[0]).(string); ok {
		return SortAsc
	}
	return SortDesc
}

// NextSortDirection cycles none -> first -> opposite -> none.
func (c Column[T]) NextSortDirection() SortDirection {
	first := c.FirstSortDirection()
	switch cur := c.SortDirection(); cur {
	case SortNone:
		return first
	case first:
		return opposite(first)
	default:
		return SortNone
	}
}

func (c Column[T]) FilterValue() string {
	for _, f := range c.table.state.ColumnFilters {
		if f.ID == c.def.ID {
			return f.Value
		}
	}
	return ""
}

func opposite(d SortDirection) SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}
