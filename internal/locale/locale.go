// Package locale renders calendar labels for a negotiated display
// language. It owns every user-visible date string so the rest of the
// program never formats dates itself.
package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"
)

// Granularity selects which label Format produces.
type Granularity int

const (
	// DayName is a short weekday column header ("Mon").
	DayName Granularity = iota
	// MonthYear is the day-grid title ("March 2024").
	MonthYear
	// Year is the month-grid title ("2024").
	Year
)

type table struct {
	months        [12]string
	weekdaysShort [7]string // indexed by time.Weekday
	monthYear     string    // fmt layout: month, year
}

var tables = map[string]table{
	"en": {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		weekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		monthYear:     "%s %d",
	},
	"de": {
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		weekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		monthYear:     "%s %d",
	},
	"fr": {
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		weekdaysShort: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		monthYear:     "%s %d",
	},
	"es": {
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		weekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		monthYear:     "%s %d",
	},
}

var supported = []language.Tag{
	language.English, // fallback
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Formatter renders labels for one negotiated language.
type Formatter struct {
	tag language.Tag
	tbl table
}

// New negotiates identifier (a BCP 47 tag like "de" or "en-AU") against
// the supported set. Unknown or empty identifiers fall back to English
// rather than failing.
func New(identifier string) *Formatter {
	tag := language.English
	if strings.TrimSpace(identifier) != "" {
		if parsed, err := language.Parse(identifier); err == nil {
			tag, _, _ = matcher.Match(parsed)
		}
	}
	base, _ := tag.Base()
	tbl, ok := tables[base.String()]
	if !ok {
		tbl = tables["en"]
	}
	return &Formatter{tag: tag, tbl: tbl}
}

// Tag returns the negotiated language tag.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Format renders d at the requested granularity.
func (f *Formatter) Format(d time.Time, g Granularity) string {
	switch g {
	case DayName:
		return f.tbl.weekdaysShort[d.Weekday()]
	case MonthYear:
		return fmt.Sprintf(f.tbl.monthYear, f.tbl.months[d.Month()-1], d.Year())
	case Year:
		return fmt.Sprintf("%d", d.Year())
	default:
		return d.Format("2006-01-02")
	}
}

// WeekdayShort returns the short header label for w.
func (f *Formatter) WeekdayShort(w time.Weekday) string {
	return f.tbl.weekdaysShort[w]
}

// MonthName returns the localized name of m.
func (f *Formatter) MonthName(m time.Month) string {
	return f.tbl.months[m-1]
}

// MatchMonth resolves free-typed input to a month, tolerating typos.
// Prefix matches win outright; otherwise the month within a small edit
// distance of the input is chosen. Returns false when nothing is close
// enough to trust.
func (f *Formatter) MatchMonth(input string) (time.Month, bool) {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return 0, false
	}

	for i, name := range f.tbl.months {
		if strings.HasPrefix(strings.ToLower(name), q) {
			return time.Month(i + 1), true
		}
	}

	best := -1
	bestDist := len(q) + 1
	for i, name := range f.tbl.months {
		d := levenshtein.ComputeDistance(q, strings.ToLower(name))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	// Roughly a third of the typed length in edits is the most we accept;
	// beyond that the guess surprises more than it helps.
	if best >= 0 && bestDist <= (len(q)+2)/3 {
		return time.Month(best + 1), true
	}
	return 0, false
}
