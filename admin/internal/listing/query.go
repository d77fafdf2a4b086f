package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/table"
)

const (
	paramSort  = "sort"
	paramHide  = "hide"
	paramSel   = "sel"
	paramPage  = "page"
	paramSize  = "size"
	descPrefix = "-"
	listSep    = ","
)

// Query is the view state as carried by the listing URL.
type Query struct {
	Sort  string `query:"sort" validate:"max=512"`
	Title string `query:"title" validate:"max=200"`
	Hide  string `query:"hide" validate:"max=1024"`
	Sel   string `query:"sel"`
	Page  int    `query:"page" validate:"gte=0,lte=100000"`
	Size  int    `query:"size" validate:"gte=0,lte=100"`
}

// State decodes the query; defaultSize applies when Size is zero.
func (q Query) State(defaultSize int) table.State {
	st := table.State{
		ColumnVisibility: table.VisibilityState{},
		RowSelection:     table.RowSelectionState{},
		Pagination:       table.PaginationState{PageIndex: q.Page, PageSize: q.Size},
	}
	if st.Pagination.PageSize == 0 {
		st.Pagination.PageSize = defaultSize
	}
	for _, s := range split(q.Sort) {
		desc := strings.HasPrefix(s, descPrefix)
		id := strings.TrimPrefix(s, descPrefix)
		if id == "" {
			continue
		}
		st.Sorting = append(st.Sorting, table.ColumnSort{ID: id, Desc: desc})
	}
	if q.Title != "" {
		st.ColumnFilters = table.ColumnFiltersState{{ID: FilterColumn, Value: q.Title}}
	}
	for _, id := range split(q.Hide) {
		st.ColumnVisibility[id] = false
	}
	for _, id := range split(q.Sel) {
		st.RowSelection[id] = true
	}
	return st
}

// Encode writes st as URL values, leaving out defaults.
func Encode(st table.State, defaultSize int) url.Values {
	v := url.Values{}
	if len(st.Sorting) > 0 {
		parts := make([]string, 0, len(st.Sorting))
		for _, s := range st.Sorting {
			if s.Desc {
				parts = append(parts, descPrefix+s.ID)
				continue
			}
			parts = append(parts, s.ID)
		}
		v.Set(paramSort, strings.Join(parts, listSep))
	}
	for _, f := range st.ColumnFilters {
		if f.ID == FilterColumn && f.Value != "" {
			v.Set(FilterColumn, f.Value)
		}
	}
	if hidden := keys(st.ColumnVisibility, false); len(hidden) > 0 {
		v.Set(paramHide, strings.Join(hidden, listSep))
	}
	if sel := keys(st.RowSelection, true); len(sel) > 0 {
		v.Set(paramSel, strings.Join(sel, listSep))
	}
	if st.Pagination.PageIndex > 0 {
		v.Set(paramPage, strconv.Itoa(st.Pagination.PageIndex))
	}
	if st.Pagination.PageSize > 0 && st.Pagination.PageSize != defaultSize {
		v.Set(paramSize, strconv.Itoa(st.Pagination.PageSize))
	}
	return v
}

func keys(m map[string]bool, want bool) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v == want {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
