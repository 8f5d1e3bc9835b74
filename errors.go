package dtresolve

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Kinds of parse failure. Compare with errors.Is.
var (
	// ErrDateTime: a combined string matched no date/separator/time rule.
	ErrDateTime = errors.New("problem with parsing date_time")
	// ErrDateAndTime: neither the date nor the time string was recognized.
	ErrDateAndTime = errors.New("problem with parsing date and time")
	// ErrDate: only the date string was not recognized.
	ErrDate = errors.New("problem with parsing date")
	// ErrTime: only the time string was not recognized.
	ErrTime = errors.New("problem with parsing time")
	// ErrLayout: the value was recognized but the layout rejected it,
	// ie a day of 32.
	ErrLayout = errors.New("problem with parsing value against layout")
)

// unrecognizedOffset is reported for every recognition failure.
const unrecognizedOffset = 1

// ParseError is returned by every resolve and recognize function.
type ParseError struct {
	Kind error
	// Input is the text that failed; for ErrDateAndTime it names both
	// the date and the time. For ErrLayout it is the date and time
	// pieces as handed to the layout, joined by a single space.
	Input string
	// Layout is set for ErrLayout.
	Layout string
	// Offset is 1 for recognition failures and the byte position in the
	// parsed value where the layout gave up for ErrLayout.
	Offset int
	Err    error

	msg string
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.msg + ": " + e.Err.Error()
	}
	return e.msg
}

// Is lets errors.Is match on the failure kind.
func (e *ParseError) Is(target error) bool { return target == e.Kind }

func (e *ParseError) Unwrap() error { return e.Err }

func dateTimeError(text string) *ParseError {
	return &ParseError{
		Kind:   ErrDateTime,
		Input:  text,
		Offset: unrecognizedOffset,
		msg:    "problem with parsing date_time: " + text,
	}
}

func dateAndTimeError(date, clock string) *ParseError {
	return &ParseError{
		Kind:   ErrDateAndTime,
		Input:  date + " " + clock,
		Offset: unrecognizedOffset,
		msg:    fmt.Sprintf("problem with parsing date: %s and time: %s", date, clock),
	}
}

func dateError(date string) *ParseError {
	return &ParseError{
		Kind:   ErrDate,
		Input:  date,
		Offset: unrecognizedOffset,
		msg:    "problem with parsing date: " + date,
	}
}

func timeError(clock string) *ParseError {
	return &ParseError{
		Kind:   ErrTime,
		Input:  clock,
		Offset: unrecognizedOffset,
		msg:    "problem with parsing time: " + clock,
	}
}

func layoutError(value, layout string, err error) *ParseError {
	offset := unrecognizedOffset
	var perr *time.ParseError
	if errors.As(err, &perr) {
		offset = len(perr.Value) - len(perr.ValueElem)
	}
	return &ParseError{
		Kind:   ErrLayout,
		Input:  value,
		Layout: layout,
		Offset: offset,
		Err:    errors.Wrapf(err, "layout %q", layout),
		msg:    "problem with parsing date_time: " + value,
	}
}
