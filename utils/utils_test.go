package utils

import (
	"testing"
	"time"
)

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"plain ten digits", "9876543210", true},
		{"with separators", "98765 432-10", true},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"leading zero", "0876543210", false},
		{"letters", "98765abcde", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateMobile(tc.mobile); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWhatsAppNumber(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"bare number gets country code", "9876543210", "+919876543210"},
		{"already e164", "+919876543210", "+919876543210"},
		{"separators stripped", "98765 43210", "+919876543210"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WhatsAppNumber(tc.mobile, "+91"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPersonalize(t *testing.T) {
	got := Personalize("Hi {name}! Visit us soon. - {sender}", "Asha", "Life Style Studio")
	want := "Hi Asha! Visit us soon. - Life Style Studio"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPersonalizeLeavesUnknownPlaceholders(t *testing.T) {
	got := Personalize("Hi {name}, offer code {code}", "Asha", "Studio")
	if got != "Hi Asha, offer code {code}" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestSameMonthDay(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"same day different year", "1990-03-15", true},
		{"full timestamp", "1990-03-15T00:00:00Z", true},
		{"different day", "1990-03-16", false},
		{"different month", "1990-04-15", false},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameMonthDay(tc.date, ref); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 18, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}
