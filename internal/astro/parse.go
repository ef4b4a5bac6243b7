package astro

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate is the sentinel wrapped by CoordinateError.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CoordinateError describes a rejected manual coordinate entry.
type CoordinateError struct {
	Field  string // "ra" or "dec"
	Input  string
	Reason string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidCoordinate.
func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// ParseCoordinate parses user-entered RA and Dec.
//
// RA accepts decimal degrees ("83.63"), hours with an h suffix ("5.58h"), or
// sexagesimal hours ("5h35m17s", "5:35:17"). Dec accepts decimal degrees or
// sexagesimal degrees ("-5d23m28s", "-5:23:28", "+22°00'52\"").
func ParseCoordinate(raText, decText string) (Equatorial, error) {
	ra, err := parseRA(strings.TrimSpace(raText))
	if err != nil {
		return Equatorial{}, err
	}
	dec, err := parseDec(strings.TrimSpace(decText))
	if err != nil {
		return Equatorial{}, err
	}
	return NewEquatorial(ra, dec), nil
}

func parseRA(s string) (float64, error) {
	if s == "" {
		return 0, &CoordinateError{Field: "ra", Input: s, Reason: "empty"}
	}

	// Plain decimal degrees
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v >= 360 {
			return 0, &CoordinateError{Field: "ra", Input: s, Reason: "degrees must be in [0, 360)"}
		}
		return v, nil
	}

	parts, ok := splitSexagesimal(s, "hms")
	if !ok {
		return 0, &CoordinateError{Field: "ra", Input: s, Reason: "expected degrees, 5.5h, or 5h30m00s"}
	}
	h, err := sexagesimal(parts)
	if err != nil || h < 0 || h >= 24 {
		return 0, &CoordinateError{Field: "ra", Input: s, Reason: "hours must be in [0, 24)"}
	}
	return h * 15, nil
}

func parseDec(s string) (float64, error) {
	if s == "" {
		return 0, &CoordinateError{Field: "dec", Input: s, Reason: "empty"}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < -90 || v > 90 {
			return 0, &CoordinateError{Field: "dec", Input: s, Reason: "degrees must be in [-90, 90]"}
		}
		return v, nil
	}

	sign := 1.0
	body := s
	switch body[0] {
	case '-':
		sign = -1
		body = body[1:]
	case '+':
		body = body[1:]
	}

	parts, ok := splitSexagesimal(body, "d°m's\"")
	if !ok {
		return 0, &CoordinateError{Field: "dec", Input: s, Reason: "expected degrees or -5d23m28s"}
	}
	d, err := sexagesimal(parts)
	if err != nil || d > 90 {
		return 0, &CoordinateError{Field: "dec", Input: s, Reason: "degrees must be in [-90, 90]"}
	}
	return sign * d, nil
}

// splitSexagesimal splits "5h35m17s", "5:35:17" or "5.5h" into up to three
// numeric fields. seps lists the unit runes that terminate a field.
func splitSexagesimal(s string, seps string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	f := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == ' ' || strings.ContainsRune(seps, r)
	})
	if len(f) == 0 || len(f) > 3 {
		return nil, false
	}
	// A colon-free, unit-free string was already rejected as a float.
	if len(f) == 1 && !strings.ContainsAny(s, seps) {
		return nil, false
	}
	return f, true
}

func sexagesimal(parts []string) (float64, error) {
	var v float64
	scale := 1.0
	for i, p := range parts {
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		if x < 0 || (i > 0 && x >= 60) {
			return 0, fmt.Errorf("field %d out of range", i)
		}
		v += x / scale
		scale *= 60
	}
	return v, nil
}

// FormatRA formats degrees as "HHhMMmSSs".
func FormatRA(ra float64) string {
	h := NormalizeRA(ra) / 15
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	ss := ((h-float64(hh))*60 - float64(mm)) * 60
	return fmt.Sprintf("%02dh%02dm%04.1fs", hh, mm, ss)
}

// FormatDec formats degrees as "+DD°MM'SS\"".
func FormatDec(dec float64) string {
	sign := '+'
	if dec < 0 {
		sign = '-'
		dec = -dec
	}
	dd := int(dec)
	mm := int((dec - float64(dd)) * 60)
	ss := ((dec-float64(dd))*60 - float64(mm)) * 60
	return fmt.Sprintf("%c%02d°%02d'%02.0f\"", sign, dd, mm, ss)
}
