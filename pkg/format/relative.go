package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/lingua/pkg/translate"
)

// relLocale holds the relative-time phrase templates for one locale.
// Templates are keyed unit → plural category and contain a {n} placeholder;
// separate past/future tables keep grammatical case correct in inflected
// languages.
type relLocale struct {
	past   map[string]map[string]string
	future map[string]map[string]string
	now    string
}

const (
	unitMinute = "minute"
	unitHour   = "hour"
	unitDay    = "day"
	unitMonth  = "month"
	unitYear   = "year"
)

var relLocales = map[string]relLocale{
	"en": {
		now: "just now",
		past: map[string]map[string]string{
			unitMinute: {"one": "{n} minute ago", "other": "{n} minutes ago"},
			unitHour:   {"one": "{n} hour ago", "other": "{n} hours ago"},
			unitDay:    {"one": "{n} day ago", "other": "{n} days ago"},
			unitMonth:  {"one": "{n} month ago", "other": "{n} months ago"},
			unitYear:   {"one": "{n} year ago", "other": "{n} years ago"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "in {n} minute", "other": "in {n} minutes"},
			unitHour:   {"one": "in {n} hour", "other": "in {n} hours"},
			unitDay:    {"one": "in {n} day", "other": "in {n} days"},
			unitMonth:  {"one": "in {n} month", "other": "in {n} months"},
			unitYear:   {"one": "in {n} year", "other": "in {n} years"},
		},
	},
	"de": {
		now: "gerade eben",
		past: map[string]map[string]string{
			unitMinute: {"one": "vor {n} Minute", "other": "vor {n} Minuten"},
			unitHour:   {"one": "vor {n} Stunde", "other": "vor {n} Stunden"},
			unitDay:    {"one": "vor {n} Tag", "other": "vor {n} Tagen"},
			unitMonth:  {"one": "vor {n} Monat", "other": "vor {n} Monaten"},
			unitYear:   {"one": "vor {n} Jahr", "other": "vor {n} Jahren"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "in {n} Minute", "other": "in {n} Minuten"},
			unitHour:   {"one": "in {n} Stunde", "other": "in {n} Stunden"},
			unitDay:    {"one": "in {n} Tag", "other": "in {n} Tagen"},
			unitMonth:  {"one": "in {n} Monat", "other": "in {n} Monaten"},
			unitYear:   {"one": "in {n} Jahr", "other": "in {n} Jahren"},
		},
	},
	"fr": {
		now: "à l'instant",
		past: map[string]map[string]string{
			unitMinute: {"one": "il y a {n} minute", "other": "il y a {n} minutes"},
			unitHour:   {"one": "il y a {n} heure", "other": "il y a {n} heures"},
			unitDay:    {"one": "il y a {n} jour", "other": "il y a {n} jours"},
			unitMonth:  {"other": "il y a {n} mois"},
			unitYear:   {"one": "il y a {n} an", "other": "il y a {n} ans"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "dans {n} minute", "other": "dans {n} minutes"},
			unitHour:   {"one": "dans {n} heure", "other": "dans {n} heures"},
			unitDay:    {"one": "dans {n} jour", "other": "dans {n} jours"},
			unitMonth:  {"other": "dans {n} mois"},
			unitYear:   {"one": "dans {n} an", "other": "dans {n} ans"},
		},
	},
	"es": {
		now: "ahora mismo",
		past: map[string]map[string]string{
			unitMinute: {"one": "hace {n} minuto", "other": "hace {n} minutos"},
			unitHour:   {"one": "hace {n} hora", "other": "hace {n} horas"},
			unitDay:    {"one": "hace {n} día", "other": "hace {n} días"},
			unitMonth:  {"one": "hace {n} mes", "other": "hace {n} meses"},
			unitYear:   {"one": "hace {n} año", "other": "hace {n} años"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "en {n} minuto", "other": "en {n} minutos"},
			unitHour:   {"one": "en {n} hora", "other": "en {n} horas"},
			unitDay:    {"one": "en {n} día", "other": "en {n} días"},
			unitMonth:  {"one": "en {n} mes", "other": "en {n} meses"},
			unitYear:   {"one": "en {n} año", "other": "en {n} años"},
		},
	},
	"cs": {
		now: "právě teď",
		past: map[string]map[string]string{
			unitMinute: {"one": "před {n} minutou", "other": "před {n} minutami"},
			unitHour:   {"one": "před {n} hodinou", "other": "před {n} hodinami"},
			unitDay:    {"one": "před {n} dnem", "other": "před {n} dny"},
			unitMonth:  {"one": "před {n} měsícem", "other": "před {n} měsíci"},
			unitYear:   {"one": "před {n} rokem", "other": "před {n} lety"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "za {n} minutu", "few": "za {n} minuty", "other": "za {n} minut"},
			unitHour:   {"one": "za {n} hodinu", "few": "za {n} hodiny", "other": "za {n} hodin"},
			unitDay:    {"one": "za {n} den", "few": "za {n} dny", "other": "za {n} dní"},
			unitMonth:  {"one": "za {n} měsíc", "few": "za {n} měsíce", "other": "za {n} měsíců"},
			unitYear:   {"one": "za {n} rok", "few": "za {n} roky", "other": "za {n} let"},
		},
	},
	"ua": {
		now: "щойно",
		past: map[string]map[string]string{
			unitMinute: {"one": "{n} хвилину тому", "few": "{n} хвилини тому", "many": "{n} хвилин тому"},
			unitHour:   {"one": "{n} годину тому", "few": "{n} години тому", "many": "{n} годин тому"},
			unitDay:    {"one": "{n} день тому", "few": "{n} дні тому", "many": "{n} днів тому"},
			unitMonth:  {"one": "{n} місяць тому", "few": "{n} місяці тому", "many": "{n} місяців тому"},
			unitYear:   {"one": "{n} рік тому", "few": "{n} роки тому", "many": "{n} років тому"},
		},
		future: map[string]map[string]string{
			unitMinute: {"one": "через {n} хвилину", "few": "через {n} хвилини", "many": "через {n} хвилин"},
			unitHour:   {"one": "через {n} годину", "few": "через {n} години", "many": "через {n} годин"},
			unitDay:    {"one": "через {n} день", "few": "через {n} дні", "many": "через {n} днів"},
			unitMonth:  {"one": "через {n} місяць", "few": "через {n} місяці", "many": "через {n} місяців"},
			unitYear:   {"one": "через {n} рік", "few": "через {n} роки", "many": "через {n} років"},
		},
	},
}

// RelativeTime renders how far t lies from the baseline (now, unless an
// explicit baseline is given) in the locale's phrasing: "5 minutes ago",
// "vor 5 Minuten", "через 5 хвилин". Differences under a minute render as the
// locale's "just now". Unknown locales degrade to the locale-agnostic
// date rendering of t.
func RelativeTime(t time.Time, code string, baseline ...time.Time) string {
	base := time.Now()
	if len(baseline) > 0 && !baseline[0].IsZero() {
		base = baseline[0]
	}

	loc, ok := relLocales[code]
	if !ok || t.IsZero() {
		return t.Format(genericConvention.dateTimeLayout)
	}

	diff := base.Sub(t)
	past := diff >= 0
	if !past {
		diff = -diff
	}

	if diff < time.Minute {
		return loc.now
	}

	unit, n := splitDuration(diff)
	table := loc.past
	if !past {
		table = loc.future
	}
	return renderRelative(table[unit], code, n)
}

func splitDuration(d time.Duration) (string, int) {
	minutes := int(d / time.Minute)
	switch {
	case minutes < 60:
		return unitMinute, minutes
	case minutes < 24*60:
		return unitHour, minutes / 60
	case minutes < 30*24*60:
		return unitDay, minutes / (24 * 60)
	case minutes < 365*24*60:
		return unitMonth, minutes / (30 * 24 * 60)
	default:
		return unitYear, minutes / (365 * 24 * 60)
	}
}

func renderRelative(templates map[string]string, code string, n int) string {
	category := translate.RuleFor(code)(n)
	tpl, ok := templates[category]
	if !ok {
		for _, fallback := range []string{"few", "many", "other"} {
			if tpl, ok = templates[fallback]; ok {
				break
			}
		}
	}
	if !ok {
		return strconv.Itoa(n)
	}
	return strings.ReplaceAll(tpl, "{n}", strconv.Itoa(n))
}
