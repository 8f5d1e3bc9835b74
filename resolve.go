// Package dtresolve works out which of a fixed catalog of date and time
// notations a string was written in and parses it into a UTC time.Time.
//
// Month names and AM/PM markers are always English and results are
// always in UTC, whatever the host locale or time.Local say.
package dtresolve

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Format names the catalog rules a string was recognized by.
type Format struct {
	Date      string
	Separator string
	Time      string
	// Layout is the Go layout the string is parsed with. Formatting a
	// resolved time with it gives a string that resolves to the same
	// instant.
	Layout string
}

func (f Format) String() string {
	return f.Date + f.Separator + f.Time
}

type candidate struct {
	// re captures the date, separator and time pieces as groups 1-3.
	re     *regexp.Regexp
	format Format
	// layout parses date + splitJoin + time once re has split them.
	layout string
}

type resolver struct {
	dates      []Rule
	times      []Rule
	separators []Rule

	once       sync.Once
	candidates []candidate
}

func newResolver(dates, times, separators []Rule) *resolver {
	return &resolver{dates: dates, times: times, separators: separators}
}

var defaultResolver = newResolver(dateRules, timeRules, separatorRules)

// combined returns every date/time/separator combination in search
// order: date outer, time middle, separator inner. Built on first use.
func (r *resolver) combined() []candidate {
	r.once.Do(func() {
		r.candidates = make([]candidate, 0, len(r.dates)*len(r.times)*len(r.separators))
		for _, d := range r.dates {
			for _, t := range r.times {
				for _, s := range r.separators {
					pattern := "^(" + d.body() + ")(" + s.body() + ")(" + t.body() + ")$"
					r.candidates = append(r.candidates, candidate{
						re: regexp.MustCompile(pattern),
						format: Format{
							Date:      d.Notation,
							Separator: s.Notation,
							Time:      t.Notation,
							Layout:    d.Layout + s.Layout + t.Layout,
						},
						layout: d.Layout + splitJoin + t.Layout,
					})
				}
			}
		}
	})
	return r.candidates
}

// match returns the first candidate text matches and its date and time
// pieces.
func (r *resolver) match(text string) (candidate, string, string, error) {
	for _, c := range r.combined() {
		if m := c.re.FindStringSubmatch(text); m != nil {
			return c, m[1], m[3], nil
		}
	}
	return candidate{}, "", "", dateTimeError(text)
}

func (r *resolver) recognizeDateTime(text string) (Format, error) {
	c, _, _, err := r.match(text)
	return c.format, err
}

func (r *resolver) resolveDateTime(text string) (time.Time, Format, error) {
	c, date, clock, err := r.match(text)
	if err != nil {
		return time.Time{}, Format{}, err
	}
	t, err := parse(date+splitJoin+clock, c.layout)
	return t, c.format, err
}

func (r *resolver) recognizeDateAndTime(date, clock string) (Format, error) {
	d, dok := firstMatch(r.dates, date)
	t, tok := firstMatch(r.times, clock)
	switch {
	case !dok && !tok:
		return Format{}, dateAndTimeError(date, clock)
	case !dok:
		return Format{}, dateError(date)
	case !tok:
		return Format{}, timeError(clock)
	}
	return Format{
		Date:      d.Notation,
		Separator: splitJoin,
		Time:      t.Notation,
		Layout:    d.Layout + splitJoin + t.Layout,
	}, nil
}

// splitJoin goes between the date and the time before parsing. Several
// layouts end or start in flexible width numbers which would otherwise
// run together: "2023-5-1"+"9:05" reads as day 19.
const splitJoin = " "

// RecognizeDateTime reports which date, separator and time rules the
// combined string text matches, without parsing it. The first
// combination in catalog order wins.
func RecognizeDateTime(text string) (Format, error) {
	return defaultResolver.recognizeDateTime(text)
}

// RecognizeDateAndTime reports which date rule matches date and which
// time rule matches clock.
func RecognizeDateAndTime(date, clock string) (Format, error) {
	return defaultResolver.recognizeDateAndTime(date, clock)
}

// ResolveDateTime parses a string holding both a date and a time in
// one of the catalog notations, ie "01.05.2023T14:30" or
// "2023-05-01 02:30 PM".
//
// Fractional seconds are decimal: "14:30:45.12" is 45.12s, not 45s and
// 12ms as java.text.SimpleDateFormat reads an SS field. Two digit years
// pivot at 69: 69-99 are 19xx, 00-68 are 20xx.
func ResolveDateTime(text string) (time.Time, error) {
	t, _, err := defaultResolver.resolveDateTime(text)
	return t, err
}

// ResolveDateTimeFormat is ResolveDateTime, also returning the Format
// text was recognized by.
func ResolveDateTimeFormat(text string) (time.Time, Format, error) {
	return defaultResolver.resolveDateTime(text)
}

// ResolveDateAndTime parses a date and a time supplied as separate
// strings. Fractions and two digit years read as in ResolveDateTime.
func ResolveDateAndTime(date, clock string) (time.Time, error) {
	t, _, err := ResolveDateAndTimeFormat(date, clock)
	return t, err
}

// ResolveDateAndTimeFormat is ResolveDateAndTime, also returning the
// Format the pair was recognized by.
func ResolveDateAndTimeFormat(date, clock string) (time.Time, Format, error) {
	f, err := RecognizeDateAndTime(date, clock)
	if err != nil {
		return time.Time{}, Format{}, err
	}
	t, err := parse(date+splitJoin+clock, f.Layout)
	return t, f, err
}

// MustResolve is ResolveDateTime, panicking on error.
func MustResolve(text string) time.Time {
	t, err := ResolveDateTime(text)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func parse(value, layout string) (time.Time, error) {
	v := value
	// Go only accepts upper case for the PM layout element.
	if strings.HasSuffix(layout, "PM") && len(v) >= 2 {
		v = v[:len(v)-2] + strings.ToUpper(v[len(v)-2:])
	}
	t, err := time.ParseInLocation(layout, v, time.UTC)
	if err != nil {
		log.WithFields(logrus.Fields{
			"input":  value,
			"layout": layout,
			"error":  err,
		}).Debug("recognized value rejected by layout")
		return time.Time{}, layoutError(value, layout, err)
	}
	return t.UTC(), nil
}
