package astro

import (
	"errors"
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		ra, dec string
		wantRA  float64
		wantDec float64
	}{
		{"decimal", "83.63", "-5.39", 83.63, -5.39},
		{"hours suffix", "5.5h", "22", 82.5, 22},
		{"hms", "5h35m17s", "-5d23m28s", 83.820833, -5.391111},
		{"colons", "5:35:17", "-5:23:28", 83.820833, -5.391111},
		{"degree symbols", "0h42m44s", "+41°16'09\"", 10.683333, 41.269167},
		{"padded", "  120 ", " 0 ", 120, 0},
		{"pole", "0", "90", 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.ra, tt.dec)
			if err != nil {
				t.Fatalf("ParseCoordinate(%q, %q) error: %v", tt.ra, tt.dec, err)
			}
			if math.Abs(got.RA-tt.wantRA) > 1e-5 || math.Abs(got.Dec-tt.wantDec) > 1e-5 {
				t.Errorf("ParseCoordinate(%q, %q) = %+v, want {%v %v}", tt.ra, tt.dec, got, tt.wantRA, tt.wantDec)
			}
		})
	}
}

func TestParseCoordinate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		ra, dec string
		field   string
	}{
		{"empty ra", "", "10", "ra"},
		{"empty dec", "10", "", "dec"},
		{"ra out of range", "360", "0", "ra"},
		{"negative ra", "-1", "0", "ra"},
		{"hours out of range", "24h", "0", "ra"},
		{"dec out of range", "10", "91", "dec"},
		{"minutes overflow", "5h61m", "0", "ra"},
		{"garbage", "abc", "0", "ra"},
		{"dec garbage", "10", "north", "dec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCoordinate(tt.ra, tt.dec)
			if err == nil {
				t.Fatalf("ParseCoordinate(%q, %q) expected error", tt.ra, tt.dec)
			}
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("error %v does not wrap ErrInvalidCoordinate", err)
			}
			var ce *CoordinateError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *CoordinateError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestFormatRADec(t *testing.T) {
	if got := FormatRA(83.820833); got != "05h35m17.0s" {
		t.Errorf("FormatRA = %q", got)
	}
	if got := FormatDec(-5.391111); got != "-05°23'28\"" {
		t.Errorf("FormatDec = %q", got)
	}
	if got := FormatDec(41.269167); got != "+41°16'09\"" {
		t.Errorf("FormatDec = %q", got)
	}
}
