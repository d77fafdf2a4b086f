package listing

import (
	"strconv"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/table"
)

const (
	SelectColumn = "select"
	FilterColumn = "title"
)

type CellKind uint8

const (
	CellText CellKind = iota
	CellTruncated
	CellImage
	CellCheckbox
)

// Cell is one rendered table cell.
type Cell struct {
	Kind CellKind
	// Text is the display text; for truncated cells it is the full value.
	Text     string
	ImageURL string
	Checkbox *Checkbox
}

type Checkbox struct {
	State table.CheckState
	Href  string
}

// Column pairs an engine column with its cell rendering rule.
type Column struct {
	Def    table.ColumnDef[model.BookItem]
	Render func(f *Formatter, b model.BookItem) Cell
}

func text(s string) Cell { return Cell{Kind: CellText, Text: s} }

func truncated(s string) Cell { return Cell{Kind: CellTruncated, Text: s} }

// Columns is the fixed, ordered column schema of the book listing.
// The select column renders its checkboxes in the page builder.
func Columns() []Column {
	return []Column{
		{Def: table.ColumnDef[model.BookItem]{ID: SelectColumn, DisableSorting: true, DisableHiding: true}},
		{
			Def:    def("_id", "ID", func(b model.BookItem) any { return b.ID }),
			Render: func(_ *Formatter, b model.BookItem) Cell { return truncated(b.ID) },
		},
		plain("title", "Title", func(b model.BookItem) string { return b.Title }),
		plain("author", "Author", func(b model.BookItem) string { return b.Author }),
		plain("category", "Category", func(b model.BookItem) string { return b.Category }),
		plain("condition", "Condition", func(b model.BookItem) string { return b.Condition }),
		{
			Def:    def("price", "Price (Rs)", func(b model.BookItem) any { return b.Price }),
			Render: func(f *Formatter, b model.BookItem) Cell { return text(f.Price(b.Price)) },
		},
		{
			Def:    def("location", "Coordinates", func(b model.BookItem) any { return Coordinates(b.Location) }),
			Render: func(_ *Formatter, b model.BookItem) Cell { return text(Coordinates(b.Location)) },
		},
		{
			Def:    def("owner", "Owner", func(b model.BookItem) any { return OwnerLabel(b.Owner) }),
			Render: func(_ *Formatter, b model.BookItem) Cell { return text(OwnerLabel(b.Owner)) },
		},
		{
			Def: def("image", "Image", func(b model.BookItem) any { return b.Image }),
			Render: func(_ *Formatter, b model.BookItem) Cell {
				if b.Image == "" {
					return text(NoImage)
				}
				return Cell{Kind: CellImage, ImageURL: b.Image, Text: b.Title}
			},
		},
		{
			Def:    def("description", "Description", func(b model.BookItem) any { return b.Description }),
			Render: func(_ *Formatter, b model.BookItem) Cell { return truncated(b.Description) },
		},
		yesNo("available", "Available", func(b model.BookItem) bool { return b.Available }),
		yesNo("isApproved", "Approved", func(b model.BookItem) bool { return b.IsApproved }),
		plain("approvalStatus", "Approval Status", func(b model.BookItem) string { return b.ApprovalStatus }),
		orNA("approvedBy", "Approved By", func(b model.BookItem) string { return b.ApprovedBy }),
		dateTime("approvedAt", "Approved At", func(b model.BookItem) string { return b.ApprovedAt }),
		orNA("rejectionReason", "Rejection Reason", func(b model.BookItem) string { return b.RejectionReason }),
		yesNo("isFeatured", "Featured", func(b model.BookItem) bool { return b.IsFeatured }),
		{
			Def:    def("views", "Views", func(b model.BookItem) any { return b.Views }),
			Render: func(_ *Formatter, b model.BookItem) Cell { return text(strconv.Itoa(b.Views)) },
		},
		dateTime("createdAt", "Created At", func(b model.BookItem) string { return b.CreatedAt }),
		dateTime("updatedAt", "Updated At", func(b model.BookItem) string { return b.UpdatedAt }),
	}
}

// ColumnDefs returns the engine part of the schema.
func ColumnDefs(cols []Column) []table.ColumnDef[model.BookItem] {
	defs := make([]table.ColumnDef[model.BookItem], 0, len(cols))
	for _, c := range cols {
		defs = append(defs, c.Def)
	}
	return defs
}

func def(id, header string, accessor func(model.BookItem) any) table.ColumnDef[model.BookItem] {
	return table.ColumnDef[model.BookItem]{ID: id, Header: header, Accessor: accessor}
}

func plain(id, header string, get func(model.BookItem) string) Column {
	return Column{
		Def:    def(id, header, func(b model.BookItem) any { return get(b) }),
		Render: func(_ *Formatter, b model.BookItem) Cell { return text(get(b)) },
	}
}

func yesNo(id, header string, get func(model.BookItem) bool) Column {
	return Column{
		Def:    def(id, header, func(b model.BookItem) any { return get(b) }),
		Render: func(_ *Formatter, b model.BookItem) Cell { return text(YesNo(get(b))) },
	}
}

func orNA(id, header string, get func(model.BookItem) string) Column {
	return Column{
		Def:    def(id, header, func(b model.BookItem) any { return get(b) }),
		Render: func(_ *Formatter, b model.BookItem) Cell { return text(OrNA(get(b))) },
	}
}

func dateTime(id, header string, get func(model.BookItem) string) Column {
	return Column{
		Def:    def(id, header, func(b model.BookItem) any { return get(b) }),
		Render: func(f *Formatter, b model.BookItem) Cell { return text(f.DateTime(get(b))) },
	}
}

func (c Cell) IsImage() bool { return c.Kind == CellImage }

func (c Cell) IsTruncated() bool { return c.Kind == CellTruncated }
