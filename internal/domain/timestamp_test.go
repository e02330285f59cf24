package domain

import (
	"testing"
	"time"
)

func TestTimestamp_String_FixedWidth(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "microsecond precision",
			in:   time.Date(2024, 3, 9, 14, 5, 7, 123456000, time.UTC),
			want: "2024-03-09 14:05:07.123456",
		},
		{
			name: "zero microseconds keep six digits",
			in:   time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC),
			want: "2024-03-09 14:05:07.000000",
		},
		{
			name: "sub-microsecond precision is truncated",
			in:   time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC),
			want: "2024-03-09 14:05:07.123456",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewTimestamp(tc.in).String()
			if got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTimestamp_LexicographicOrderMatchesChronological(t *testing.T) {
	base := time.Date(2024, 12, 31, 23, 59, 59, 999999000, time.UTC)
	steps := []time.Duration{
		time.Microsecond,
		time.Second,
		time.Minute,
		24 * time.Hour,
	}

	prev := NewTimestamp(base)
	for _, d := range steps {
		next := NewTimestamp(prev.Time().Add(d))
		if !(prev.String() < next.String()) {
			t.Fatalf("rendering order broke: %q !< %q (step %v)", prev, next, d)
		}
		prev = next
	}
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	in := time.Date(2024, 6, 1, 8, 30, 0, 250000000, time.UTC)
	ts := NewTimestamp(in)

	got, err := ParseTimestamp(ts.String(), time.UTC)
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if !got.Time().Equal(in) {
		t.Fatalf("round trip = %v, want %v", got.Time(), in)
	}
}

func TestParseTimestamp_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "not a time", "2024-06-01T08:30:00Z"} {
		if _, err := ParseTimestamp(s, time.UTC); err == nil {
			t.Fatalf("ParseTimestamp(%q): expected error", s)
		}
	}
}
