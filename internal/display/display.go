// Package display renders optional launch fields as human readable strings.
package display

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Fallbacks shown in place of absent launch fields.
const (
	NoMissionName = "No mission name"
	NoData        = "No data"
	NoDescription = "No description available."
	Unknown       = "Unknown"
)

// DateLayout is the layout dates are rendered with.
const DateLayout = "2006-01-02"

// launchDateLayouts are the layouts launch dates are accepted in, in order.
var launchDateLayouts = []string{
	"2006-01-02T15:04:05.000Z0700",
	time.RFC3339Nano,
}

// Text returns *s, or fallback when s is nil or blank.
func Text(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}

// Date parses a launch date and renders it in UTC with DateLayout. The bool
// return is false when s is absent or not a recognized date.
func Date(s *string) (string, bool) {
	if s == nil {
		return "", false
	}

	for _, layout := range launchDateLayouts {
		t, err := time.Parse(layout, *s)
		if err != nil {
			continue
		}
		return t.UTC().Format(DateLayout), true
	}
	return "", false
}

// DateOr renders s with Date, returning fallback when it cannot.
func DateOr(s *string, fallback string) string {
	if date, ok := Date(s); ok {
		return date
	}
	return fallback
}

// Meters renders a length in meters, e.g. "70 m".
func Meters(m *float64) string {
	if m == nil {
		return Unknown
	}
	return humanize.Commaf(*m) + " m"
}

// Kilograms renders a mass in kilograms, e.g. "549,054 kg".
func Kilograms(kg *float64) string {
	if kg == nil {
		return Unknown
	}
	return humanize.Commaf(*kg) + " kg"
}
