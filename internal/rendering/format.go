package rendering

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hansriess/academic-site/internal/db"
)

// amountPrinter renders grouped-thousands integers ("50,000").
var amountPrinter = message.NewPrinter(language.English)

// YearRange renders "{start} -- {end}", collapsing equal years to a single
// year and using "Present" when the range is open-ended (end == 0).
func YearRange(start, end int) string {
	if end == 0 {
		return fmt.Sprintf("%d -- Present", start)
	}
	if start == end {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d -- %d", start, end)
}

// DateRange renders a year range from full dates, treating a nil end date
// or a current flag as open-ended.
func DateRange(start, end *db.Date, current bool) string {
	if start == nil {
		return ""
	}
	if current || end == nil || end.IsZero() {
		return YearRange(start.Year(), 0)
	}
	return YearRange(start.Year(), end.Year())
}

// FormatAmount renders a grant amount as a grouped-thousands integer
// followed by its currency code. It returns "" when the amount is absent.
func FormatAmount(amount *int64, currency string) string {
	if amount == nil {
		return ""
	}
	s := amountPrinter.Sprintf("%d", *amount)
	if currency == "" {
		return s
	}
	return s + " " + EscapeLaTeX(currency)
}

// joinPresent joins the non-empty parts with sep, never emitting an empty
// separator artifact.
func joinPresent(sep string, parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// FormatAddress concatenates the present address components of a profile
// with commas. Each component is escaped individually.
func FormatAddress(p *db.Profile) string {
	return joinPresent(", ",
		EscapeLaTeX(p.RoomNumber),
		EscapeLaTeX(p.Building),
		EscapeLaTeX(p.Street),
		EscapeLaTeX(p.City),
		EscapeLaTeX(p.State),
		EscapeLaTeX(p.ZipCode),
		EscapeLaTeX(p.Country),
	)
}

// href renders a clickable marker. URLs go into \href verbatim (they are
// not body text), only the label is treated as markup.
func href(url, label string) string {
	if url == "" {
		return ""
	}
	return fmt.Sprintf(`\href{%s}{[%s]}`, url, label)
}

// FormatLinks renders the optional link markers of a reference: file
// attachment, DOI (expanded to its canonical resolver), external URL and
// code repository. Present markers are joined with a single space.
func FormatLinks(r *db.Reference) string {
	var doiURL string
	if r.DOI != "" {
		doiURL = "https://doi.org/" + r.DOI
	}
	return joinPresent(" ",
		href(r.PDFURL, "PDF"),
		href(doiURL, "DOI"),
		href(r.URL, "URL"),
		href(r.CodeURL, "Code"),
	)
}
