package listing

import (
	"strconv"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	CurrencyLabel = "Rs"
	NotAvailable  = "N/A"
	NoLocation    = "No Location"
	NoOwner       = "No Owner"
	NoImage       = "No Image"
	InvalidDate   = "Invalid Date"
)

var dateTimeLayouts = map[string]string{
	"en-US": "1/2/2006, 3:04:05 PM",
	"en-GB": "02/01/2006, 15:04:05",
	"en-IN": "2/1/2006, 3:04:05 pm",
	"de":    "2.1.2006, 15:04:05",
	"ru":    "02.01.2006, 15:04:05",
}

// Formatter renders cell values for one locale and time zone.
type Formatter struct {
	lang     language.Tag
	printer  *message.Printer
	location *time.Location
	layout   string
}

func NewFormatter(locale string, loc *time.Location) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{
		lang:     tag,
		printer:  message.NewPrinter(tag),
		location: loc,
		layout:   layoutFor(tag),
	}
}

func layoutFor(tag language.Tag) string {
	if l, ok := dateTimeLayouts[tag.String()]; ok {
		return l
	}
	base, _ := tag.Base()
	if l, ok := dateTimeLayouts[base.String()]; ok {
		return l
	}
	return dateTimeLayouts["en-US"]
}

func (f *Formatter) Language() language.Tag { return f.lang }

// Price groups thousands the locale's way: 1234567 -> "Rs 1,234,567".
func (f *Formatter) Price(v float64) string {
	return CurrencyLabel + " " + f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// DateTime formats an API timestamp, N/A when empty.
func (f *Formatter) DateTime(s string) string {
	if s == "" {
		return NotAvailable
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if t, err = time.Parse(time.DateOnly, s); err != nil {
			return InvalidDate
		}
	}
	return t.In(f.location).Format(f.layout)
}

func Coordinates(l model.BookLocation) string {
	if !l.HasCoordinates() {
		return NoLocation
	}
	return formatFloat(l.Coordinates[0]) + ", " + formatFloat(l.Coordinates[1])
}

func OwnerLabel(ref model.OwnerRef) string {
	switch ref.Kind() {
	case model.OwnerID:
		id, _ := ref.ID()
		return id
	case model.OwnerInline:
		o, _ := ref.Inline()
		switch {
		case o.Name != "":
			return o.Name
		case o.Email != "":
			return o.Email
		}
		return NoOwner
	case model.OwnerNone:
		return NoOwner
	}
	return NoOwner
}

func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
