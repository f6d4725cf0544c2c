package deepl_test

import (
	"testing"

	"github.com/adamwoolhether/deepl"
)

func TestFormality_String(t *testing.T) {
	tests := []struct {
		formality deepl.Formality
		want      string
	}{
		{deepl.FormalityDefault, "default"},
		{deepl.FormalityMore, "more"},
		{deepl.FormalityLess, "less"},
		{deepl.FormalityPreferMore, "prefer_more"},
		{deepl.FormalityPreferLess, "prefer_less"},
	}

	for _, tt := range tests {
		if got := tt.formality.String(); got != tt.want {
			t.Errorf("Formality(%d).String() = %q, want %q", tt.formality, got, tt.want)
		}

		text, err := tt.formality.MarshalText()
		if err != nil {
			t.Errorf("MarshalText(%q): %v", tt.want, err)
		}
		if string(text) != tt.want {
			t.Errorf("MarshalText = %q, want %q", text, tt.want)
		}
	}
}

func TestSplitSentences_String(t *testing.T) {
	tests := []struct {
		split deepl.SplitSentences
		want  string
	}{
		{deepl.SplitNone, "0"},
		{deepl.SplitPunctuationAndNewlines, "1"},
		{deepl.SplitNoNewlines, "nonewlines"},
	}

	for _, tt := range tests {
		if got := tt.split.String(); got != tt.want {
			t.Errorf("SplitSentences(%d).String() = %q, want %q", tt.split, got, tt.want)
		}
	}
}
