package filter

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	end := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	}

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantFrom *time.Time
		wantTo   *time.Time
	}{
		{
			name:     "single day",
			input:    "2021-03-01",
			wantFrom: timePtr(day(2021, 3, 1)),
			wantTo:   timePtr(end(2021, 3, 1)),
		},
		{
			name:     "month",
			input:    "2021-02",
			wantFrom: timePtr(day(2021, 2, 1)),
			wantTo:   timePtr(end(2021, 2, 28)),
		},
		{
			name:     "span",
			input:    "2021-03-01..2021-03-07",
			wantFrom: timePtr(day(2021, 3, 1)),
			wantTo:   timePtr(end(2021, 3, 7)),
		},
		{
			name:     "span of months",
			input:    " 2020-12 .. 2021-01 ",
			wantFrom: timePtr(day(2020, 12, 1)),
			wantTo:   timePtr(end(2021, 1, 31)),
		},
		{
			name:     "open end",
			input:    "2021-03-01..",
			wantFrom: timePtr(day(2021, 3, 1)),
		},
		{
			name:   "open start",
			input:  "..2021-03-07",
			wantTo: timePtr(end(2021, 3, 7)),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no ends",
			input:   "..",
			wantErr: true,
		},
		{
			name:    "reversed",
			input:   "2021-03-07..2021-03-01",
			wantErr: true,
		},
		{
			name:    "unknown format",
			input:   "March 1-15",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ParseDateRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDateRange(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateRange(%q) unexpected error: %v", tt.input, err)
			}

			if !sameTime(from, tt.wantFrom) {
				t.Errorf("from = %v, want %v", from, tt.wantFrom)
			}
			if !sameTime(to, tt.wantTo) {
				t.Errorf("to = %v, want %v", to, tt.wantTo)
			}
		})
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
