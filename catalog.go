package dtresolve

import (
	"regexp"
	"strings"
)

// Rule pairs a recognition pattern with the layout used to parse values
// it recognizes. Position in its catalog is its priority.
type Rule struct {
	// Notation is the familiar pattern-letter form, ie "dd.MM.yyyy".
	Notation string
	// Pattern is the anchored regular expression source.
	Pattern string
	// Layout is the Go reference time layout, ie "2.1.2006".
	Layout string

	re *regexp.Regexp
}

// Matches reports whether s matches the rule as a whole.
func (r Rule) Matches(s string) bool {
	return r.re.MatchString(s)
}

// body is the pattern with ^ and $ stripped so it can be spliced
// between other patterns.
func (r Rule) body() string {
	return strings.TrimSuffix(strings.TrimPrefix(r.Pattern, "^"), "$")
}

func newRule(notation, pattern, layout string) Rule {
	return Rule{
		Notation: notation,
		Pattern:  pattern,
		Layout:   layout,
		re:       regexp.MustCompile(pattern),
	}
}

const meridiem = `(?i:AM|PM)`

// Order matters: the first rule that matches wins.
//
// The yy rules (ddMMMyy, yy-MM-dd, dd.MM.yy) use Go's fixed pivot:
// 69-99 are 19xx and 00-68 are 20xx, so "01May50" is 2050.
var dateRules = []Rule{
	newRule("dd.MM.yyyy", `^\d{1,2}\.\d{1,2}\.\d{4}$`, "2.1.2006"),
	newRule("yyyy-MM-dd", `^\d{4}-\d{1,2}-\d{1,2}$`, "2006-1-2"),
	newRule("dd-MM-yyyy", `^\d{1,2}-\d{1,2}-\d{4}$`, "2-1-2006"),
	newRule("yyyy/MM/dd", `^\d{4}/\d{1,2}/\d{1,2}$`, "2006/1/2"),
	newRule("MM/dd/yyyy", `^\d{1,2}/\d{1,2}/\d{4}$`, "1/2/2006"),
	newRule("dd MMMM yyyy", `^\d{1,2} [a-zA-Z]{4,} \d{4}$`, "2 January 2006"),
	newRule("MMM dd yyyy", `^[a-zA-Z]{3} \d{1,2} \d{4}$`, "Jan 2 2006"),
	newRule("yyyy MMM dd", `^\d{4} [a-zA-Z]{3} \d{1,2}$`, "2006 Jan 2"),
	newRule("ddMMMyy", `^\d{1,2}[a-zA-Z]{3}\d{2}$`, "2Jan06"),
	newRule("ddMMMyyyy", `^\d{1,2}[a-zA-Z]{3}\d{4}$`, "2Jan2006"),
	newRule("dd MMM yyyy", `^\d{1,2} [a-zA-Z]{3} \d{4}$`, "2 Jan 2006"),
	newRule("yy-MM-dd", `^\d{2}-\d{1,2}-\d{1,2}$`, "06-1-2"),
	newRule("yyyyMMdd", `^\d{8}$`, "20060102"),
	newRule("dd.MM.yy", `^\d{1,2}\.\d{1,2}\.\d{2}$`, "2.1.06"),
}

var timeRules = []Rule{
	newRule("HH:mm", `^\d{1,2}:\d{2}$`, "15:04"),
	newRule("HH:mm:ss", `^\d{1,2}:\d{2}:\d{2}$`, "15:04:05"),
	newRule("HH:mm:ss.SS", `^\d{1,2}:\d{2}:\d{2}\.\d{2}$`, "15:04:05.00"),
	newRule("HH:mm:ss.SSS", `^\d{1,2}:\d{2}:\d{2}\.\d{3}$`, "15:04:05.000"),
	newRule("HH:mm:ss.SSSXXX", `^\d{1,2}:\d{2}:\d{2}\.\d{3}[-+]\d{2}:\d{2}$`, "15:04:05.000-07:00"),
	newRule("HH:mm:ss.SSXXX", `^\d{1,2}:\d{2}:\d{2}\.\d{2}[-+]\d{2}:\d{2}$`, "15:04:05.00-07:00"),
	newRule("HH:mm:ss.SSSZ", `^\d{1,2}:\d{2}:\d{2}\.\d{3}[-+]\d{4}$`, "15:04:05.000-0700"),
	newRule("HH:mm:ss.SSZ", `^\d{1,2}:\d{2}:\d{2}\.\d{2}[-+]\d{4}$`, "15:04:05.00-0700"),
	newRule("HH:mm:ssXXX", `^\d{1,2}:\d{2}:\d{2}[-+]\d{2}:\d{2}$`, "15:04:05-07:00"),
	newRule("HH:mm:ssZ", `^\d{1,2}:\d{2}:\d{2}[-+]\d{4}$`, "15:04:05-0700"),
	newRule("HH:mmXXX", `^\d{1,2}:\d{2}[-+]\d{2}:\d{2}$`, "15:04-07:00"),
	newRule("HH:mmZ", `^\d{1,2}:\d{2}[-+]\d{4}$`, "15:04-0700"),
	newRule("hhmma", `^\d{4}`+meridiem+`$`, "0304PM"),
	newRule("hhmm a", `^\d{4} `+meridiem+`$`, "0304 PM"),
	newRule("hh:mma", `^\d{1,2}:\d{2}`+meridiem+`$`, "3:04PM"),
	newRule("hh:mm:ssa", `^\d{1,2}:\d{2}:\d{2}`+meridiem+`$`, "3:04:05PM"),
	newRule("hh:mm a", `^\d{1,2}:\d{2} `+meridiem+`$`, "3:04 PM"),
	newRule("hh:mm:ss a", `^\d{1,2}:\d{2}:\d{2} `+meridiem+`$`, "3:04:05 PM"),
	newRule("HHmmss", `^\d{6}$`, "150405"),
}

// Separator patterns are spliced into combined patterns unanchored.
var separatorRules = []Rule{
	newRule(" ", `^ $`, " "),
	newRule("'T'", `^T$`, "T"),
	newRule("'t'", `^t$`, "t"),
	newRule("", `^$`, ""),
}

// DateRules returns a copy of the date catalog in priority order.
func DateRules() []Rule { return append([]Rule(nil), dateRules...) }

// TimeRules returns a copy of the time catalog in priority order.
func TimeRules() []Rule { return append([]Rule(nil), timeRules...) }

// SeparatorRules returns a copy of the date/time separator catalog.
func SeparatorRules() []Rule { return append([]Rule(nil), separatorRules...) }

// firstMatch returns the first rule in rules that matches s.
func firstMatch(rules []Rule, s string) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(s) {
			return r, true
		}
	}
	return Rule{}, false
}
