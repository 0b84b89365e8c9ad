package core

import "testing"

func TestFormatSecondsHMS(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m"},
		{225, "3m 45s"},
		{3600, "1h"},
		{3661, "1h 1m 1s"},
		{7380, "2h 3m"},
		{-5, "0s"},
	}
	for _, tc := range cases {
		if got := FormatSecondsHMS(tc.in); got != tc.want {
			t.Errorf("FormatSecondsHMS(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{12345, "12 345"},
		{1234567, "1 234 567"},
	}
	for _, tc := range cases {
		if got := FormatCount(tc.in); got != tc.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(7); got != "07:00" {
		t.Fatalf("FormatHour(7) = %q", got)
	}
	if got := FormatHour(23); got != "23:00" {
		t.Fatalf("FormatHour(23) = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"glass animals", "Glass Animals"},
		{"MGMT", "Mgmt"},
		{"  stray  kids ", "Stray Kids"},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
