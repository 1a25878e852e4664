package format

// convention captures one locale's display conventions for dates and numbers.
type convention struct {
	decimalSep     string
	thousandSep    string
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
	currencyAfter  bool
}

// genericConvention is the locale-agnostic degradation target: ISO dates,
// plain decimal point, no grouping.
var genericConvention = convention{
	decimalSep:     ".",
	thousandSep:    "",
	dateLayout:     "2006-01-02",
	timeLayout:     "15:04",
	dateTimeLayout: "2006-01-02 15:04",
}

var conventions = map[string]convention{
	"en": {
		decimalSep:     ".",
		thousandSep:    ",",
		dateLayout:     "01/02/2006",
		timeLayout:     "3:04 PM",
		dateTimeLayout: "01/02/2006 3:04 PM",
	},
	"de": {
		decimalSep:     ",",
		thousandSep:    ".",
		dateLayout:     "02.01.2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02.01.2006 15:04",
		currencyAfter:  true,
	},
	"fr": {
		decimalSep:     ",",
		thousandSep:    " ",
		dateLayout:     "02/01/2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02/01/2006 15:04",
		currencyAfter:  true,
	},
	"es": {
		decimalSep:     ",",
		thousandSep:    ".",
		dateLayout:     "02/01/2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02/01/2006 15:04",
		currencyAfter:  true,
	},
	"cs": {
		decimalSep:     ",",
		thousandSep:    " ",
		dateLayout:     "02.01.2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02.01.2006 15:04",
		currencyAfter:  true,
	},
	// Legacy content code; conventions follow uk-UA.
	"ua": {
		decimalSep:     ",",
		thousandSep:    " ",
		dateLayout:     "02.01.2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02.01.2006 15:04",
		currencyAfter:  true,
	},
}

func conventionFor(code string) (convention, bool) {
	c, ok := conventions[code]
	if !ok {
		return genericConvention, false
	}
	return c, true
}
