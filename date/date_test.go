package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025/07/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "ledger price db", pattern: "%Y/%m/%d", in: "2024/01/02", want: New(2024, time.January, 2)},
		{name: "ledger stats", pattern: "%y-%b-%d", in: "19-Mar-04", want: New(2019, time.March, 4)},
		{name: "iso", pattern: "%Y-%m-%d", in: "2024-12-31", want: New(2024, time.December, 31)},
		{name: "mismatch", pattern: "%Y/%m/%d", in: "2024-01-02", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFormat(tc.pattern, tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFormat(%q, %q) error = %v, wantErr %v", tc.pattern, tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q, %q) = %v, want %v", tc.pattern, tc.in, got, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	d := New(2024, time.January, 2)
	if got := d.Format("%Y/%m/%d"); got != "2024/01/02" {
		t.Errorf("Format() = %q, want %q", got, "2024/01/02")
	}
	if got := d.String(); got != "2024-01-02" {
		t.Errorf("String() = %q, want %q", got, "2024-01-02")
	}
}

func TestEndOfDay(t *testing.T) {
	got := New(2024, time.January, 2).EndOfDay(time.UTC)
	want := time.Date(2024, time.January, 2, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2024, time.March, 1, 22, 0, 0, 0, loc)
	if got, want := Of(at), New(2024, time.March, 1); got != want {
		t.Errorf("Of() = %v, want %v", got, want)
	}
	if got, want := Of(at.UTC()), New(2024, time.March, 2); got != want {
		t.Errorf("Of(UTC) = %v, want %v", got, want)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(New(2024, time.January, 30), New(2024, time.February, 2))
	if got := r.Days(); got != 4 {
		t.Errorf("Days() = %d, want 4", got)
	}
	testCases := []struct {
		in   Date
		want bool
	}{
		{New(2024, time.January, 29), false},
		{New(2024, time.January, 30), true},
		{New(2024, time.February, 1), true},
		{New(2024, time.February, 2), true},
		{New(2024, time.February, 3), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.in); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := NewRange(New(2024, time.January, 2), New(2024, time.January, 1)).Days(); got != 0 {
		t.Errorf("Days() of an empty range = %d, want 0", got)
	}
}
