package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/lingua/pkg/locale"
)

// Date renders a calendar date in the locale's conventions. Unknown locales
// and zero times degrade to ISO 8601.
func Date(t time.Time, code string) string {
	c, _ := conventionFor(code)
	if t.IsZero() {
		c = genericConvention
	}
	return t.Format(c.dateLayout)
}

// Time renders a wall-clock time in the locale's conventions.
func Time(t time.Time, code string) string {
	c, _ := conventionFor(code)
	return t.Format(c.timeLayout)
}

// DateTime renders a combined date and time in the locale's conventions.
func DateTime(t time.Time, code string) string {
	c, _ := conventionFor(code)
	if t.IsZero() {
		c = genericConvention
	}
	return t.Format(c.dateTimeLayout)
}

// Number renders a number with the locale's decimal and grouping separators.
// Up to two fractional digits are kept, trailing zeros trimmed. NaN and
// infinities render through strconv as-is.
func Number(n float64, code string) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	c, _ := conventionFor(code)
	return formatDecimal(n, c, 2, true)
}

// Currency renders a monetary amount with the locale's number conventions and
// the currency's localized symbol. An unrecognized ISO code degrades to
// "<amount> <CODE>".
func Currency(amount float64, code, currencyCode string) string {
	negative := math.Signbit(amount)
	if negative {
		amount = -amount
	}
	c, _ := conventionFor(code)
	numStr := formatDecimal(amount, c, 2, false)

	var result string
	if unit, err := currency.ParseISO(currencyCode); err == nil {
		p := message.NewPrinter(locale.FormatTag(code))
		symbol := p.Sprint(currency.Symbol(unit))
		if c.currencyAfter {
			result = numStr + " " + symbol
		} else {
			result = symbol + numStr
		}
	} else {
		result = numStr + " " + strings.ToUpper(currencyCode)
	}

	if negative {
		result = "-" + result
	}
	return result
}

// formatDecimal renders n with the convention's separators and at most
// maxFrac fractional digits. When trim is false the fractional part is padded
// to exactly maxFrac digits (currency style).
func formatDecimal(n float64, c convention, maxFrac int, trim bool) string {
	negative := math.Signbit(n)
	if negative {
		n = -n
	}

	s := strconv.FormatFloat(n, 'f', maxFrac, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	if trim {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	grouped := intPart
	if c.thousandSep != "" && len(intPart) > 3 {
		var parts []string
		for i := len(intPart); i > 0; i -= 3 {
			start := max(0, i-3)
			parts = append([]string{intPart[start:i]}, parts...)
		}
		grouped = strings.Join(parts, c.thousandSep)
	}

	result := grouped
	if fracPart != "" {
		result = grouped + c.decimalSep + fracPart
	}
	if negative {
		result = "-" + result
	}
	return result
}
