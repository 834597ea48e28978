package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		phrase string
		want   time.Time
		ok     bool
	}{
		{phrase: "today", want: fixedNow, ok: true},
		{phrase: "Tomorrow", want: fixedNow.AddDate(0, 0, 1), ok: true},
		{phrase: "next week", want: fixedNow.AddDate(0, 0, 7), ok: true},
		{phrase: "next month", want: fixedNow.AddDate(0, 1, 0), ok: true},
		{phrase: "next year", want: fixedNow.AddDate(1, 0, 0), ok: true},
		{phrase: "in 3 days", want: fixedNow.AddDate(0, 0, 3), ok: true},
		{phrase: "in 1 day", want: fixedNow.AddDate(0, 0, 1), ok: true},
		{phrase: "in 2 weeks", want: fixedNow.AddDate(0, 0, 14), ok: true},
		{phrase: "in 4 months", want: fixedNow.AddDate(0, 4, 0), ok: true},
		{phrase: "march 15", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{phrase: "15 march 2027", want: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{phrase: "december 1, 2030", want: time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{phrase: "march 3 1999", want: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), ok: true},
		{phrase: "february 30", ok: false},
		{phrase: "in", ok: false},
		{phrase: "someday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := ResolveDate(tt.phrase, fixedNow)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveDate_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, loc)

	got, ok := ResolveDate("january 20", now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, loc), got)
}

func TestFindTemporal_Order(t *testing.T) {
	phrase, ok := findTemporal("tomorrow or march 3")
	assert.True(t, ok)
	assert.Equal(t, "march 3", phrase)

	phrase, ok = findTemporal("in 5 days or next week")
	assert.True(t, ok)
	assert.Equal(t, "next week", phrase)

	_, ok = findTemporal("nothing here")
	assert.False(t, ok)
}
