package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"h:mma", "3:04pm"},
		{"HH:mm", "15:04"},
		{"MMM D", "Jan 2"},
		{"DD.MM.YYYY", "02.01.2006"},
		{"dddd, MMMM D", "Monday, January 2"},
		{"h:mm A", "3:04 PM"},
		{"[at] h:mma", "at 3:04pm"},
	}
	for _, tc := range cases {
		got, err := Layout(tc.pattern)
		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.want, got, tc.pattern)
	}
}

func TestLayout_Invalid(t *testing.T) {
	_, err := Layout("")
	assert.Error(t, err)

	_, err = Layout("QQ")
	assert.ErrorContains(t, err, "unsupported token")

	_, err = Layout("[unclosed h:mm")
	assert.ErrorContains(t, err, "unclosed literal")
}

func TestFormat(t *testing.T) {
	f := New(time.UTC)
	at := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)

	got, err := f.Format(at, "h:mma")
	require.NoError(t, err)
	assert.Equal(t, "2:05pm", got)

	got, err = f.Format(at, "DD.MM.YYYY")
	require.NoError(t, err)
	assert.Equal(t, "10.03.2026", got)

	// Zero time renders as nothing, not as year 1.
	got, err = f.Format(time.Time{}, "h:mma")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = f.Format(at, "")
	assert.Error(t, err)
}

func TestFormat_ConvertsToLocation(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	require.NoError(t, err)
	f := New(zurich)

	// 14:05 UTC in March is 15:05 in Zurich (CET, UTC+1).
	at := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	got, err := f.Format(at, "HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "15:05", got)
}

func TestRelative(t *testing.T) {
	f := New(time.UTC)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"a minute", now.Add(-90 * time.Second), "a minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"an hour", now.Add(-90 * time.Minute), "an hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"a day", now.Add(-30 * time.Hour), "a day ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"future soon", now.Add(30 * time.Second), "in under a minute"},
		{"future hours", now.Add(5 * time.Hour), "in 5 hours"},
		{"future days", now.Add(96 * time.Hour), "in 4 days"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Relative(tc.t, now))
		})
	}
}
