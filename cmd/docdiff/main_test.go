package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"dif", "diff"},
		{"diffs", "diff"},
		{"dfif", "diff"},
		{"rendr", "render"},
		{"rende", "render"},
		{"mc", "mcp"},
		{"versio", "version"},
		{"verison", "version"},
		{"hep", "help"},
		{"hlp", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"rendering", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
