package dtresolve

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateTimeErrors(t *testing.T) {
	for _, in := range []string{"", " ", "bogus", "2023-05-01"} {
		_, err := ResolveDateTime(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDateTime)
		assert.NotErrorIs(t, err, ErrLayout)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, in, perr.Input)
		assert.Equal(t, 1, perr.Offset)
		assert.Equal(t, "problem with parsing date_time: "+in, err.Error())
	}
}

func TestResolveDateAndTimeErrors(t *testing.T) {
	_, err := ResolveDateAndTime("not-a-date", "14:30:00")
	assert.ErrorIs(t, err, ErrDate)
	assert.Equal(t, "problem with parsing date: not-a-date", err.Error())

	_, err = ResolveDateAndTime("2023-05-01", "not-a-time")
	assert.ErrorIs(t, err, ErrTime)
	assert.Equal(t, "problem with parsing time: not-a-time", err.Error())

	_, err = ResolveDateAndTime("bogus", "bogus")
	assert.ErrorIs(t, err, ErrDateAndTime)
	assert.NotErrorIs(t, err, ErrDate)
	assert.NotErrorIs(t, err, ErrTime)
	assert.Equal(t, "problem with parsing date: bogus and time: bogus", err.Error())

	_, err = ResolveDateAndTime("", "")
	assert.ErrorIs(t, err, ErrDateAndTime)

	for _, tc := range []struct{ date, clock string }{
		{"not-a-date", "14:30:00"},
		{"2023-05-01", "not-a-time"},
		{"bogus", "bogus"},
	} {
		_, err := RecognizeDateAndTime(tc.date, tc.clock)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Offset)
		assert.Nil(t, perr.Unwrap())
	}

	// the combined path knows nothing about the split kinds
	_, err = ResolveDateTime("not-a-date 14:30:00")
	assert.ErrorIs(t, err, ErrDateTime)
	assert.NotErrorIs(t, err, ErrDate)
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		in, layout string
	}{
		{"32.01.2023 10:00", "2.1.2006 15:04"},
		{"29.02.2023 10:00", "2.1.2006 15:04"},
		{"2023-13-01 10:00", "2006-1-2 15:04"},
		{"2023-05-01 24:00", "2006-1-2 15:04"},
		{"2023-05-01 13:30 PM", "2006-1-2 3:04 PM"},
		{"07 Sept 2023 10:00", "2 January 2006 15:04"},
		{"07 Foo 2023 10:00", "2 Jan 2006 15:04"},
		{"2023-05-01 10:61", "2006-1-2 15:04"},
	}
	for _, tc := range tests {
		f, err := RecognizeDateTime(tc.in)
		require.NoError(t, err, "for %q", tc.in)
		assert.Equal(t, tc.layout, f.Layout)

		_, err = ResolveDateTime(tc.in)
		require.Error(t, err, "for %q", tc.in)
		assert.ErrorIs(t, err, ErrLayout, "for %q", tc.in)
		assert.NotErrorIs(t, err, ErrDateTime, "for %q", tc.in)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, tc.in, perr.Input)
		assert.Equal(t, tc.layout, perr.Layout)
		assert.True(t, perr.Offset >= 0 && perr.Offset <= len(tc.in), "offset %d for %q", perr.Offset, tc.in)

		var terr *time.ParseError
		assert.ErrorAs(t, err, &terr, "for %q", tc.in)
		assert.Contains(t, err.Error(), tc.layout)
	}

	_, err := ResolveDateAndTime("2023-02-30", "10:00")
	assert.ErrorIs(t, err, ErrLayout)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "2023-02-30 10:00", perr.Input)
}

func TestLayoutErrorCause(t *testing.T) {
	_, err := ResolveDateTime("32.01.2023 10:00")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.IsType(t, &time.ParseError{}, errors.Cause(perr.Err))
}
