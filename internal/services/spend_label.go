package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"card-advisor/internal/models"

	"github.com/dustin/go-humanize"
)

const defaultSpendLabel = "Spending Entry"

// SpendLabel renders a spend entry the way the front end shows it, e.g.
// "Dining (Swiggy) [Online, ₹1,000]"
func SpendLabel(spend models.SpendEntry) string {
	base := spend.Name
	if base == "" {
		switch {
		case spend.Category != "" && spend.Subcategory != "":
			base = spend.Category + " (" + spend.Subcategory + ")"
		case spend.Category != "":
			base = spend.Category
		case spend.Subcategory != "":
			base = spend.Subcategory
		default:
			base = defaultSpendLabel
		}

		app := spend.Brand
		if app == "" {
			app = spend.Platform
		}
		if app != "" {
			base += " (" + app + ")"
		}
	}

	details := make([]string, 0, 2)
	if channel := spend.ChannelOrType(); channel != "" {
		details = append(details, capitalize(channel))
	}
	if !spend.Amount.IsZero() {
		details = append(details, "₹"+humanize.Comma(spend.Amount.IntPart()))
	}

	if len(details) == 0 {
		return base
	}
	return base + " [" + strings.Join(details, ", ") + "]"
}

func capitalize(s string) string {
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToUpper(r)) + lower[size:]
}
