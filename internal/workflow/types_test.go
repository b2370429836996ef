package workflow

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestScoreUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Score
	}{
		{"number", `8`, 8},
		{"numeric string", `"7"`, 7},
		{"padded numeric string", `" 9 "`, 9},
		{"non-numeric string", `"excellent"`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Score
			if err := json.Unmarshal([]byte(tc.input), &s); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if s != tc.want {
				t.Errorf("expected %d, got %d", tc.want, s)
			}
		})
	}
}

func TestReviewUnmarshalStringScores(t *testing.T) {
	data := `{
		"overall_quality": "6",
		"accuracy": 7,
		"fluency": "8",
		"style_preservation": "good",
		"suggested_corrections": ["rework the opening"]
	}`

	var r Review
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if r.OverallQuality != 6 || r.Accuracy != 7 || r.Fluency != 8 {
		t.Errorf("unexpected scores: %d %d %d", r.OverallQuality, r.Accuracy, r.Fluency)
	}
	if r.StylePreservation != 0 {
		t.Errorf("non-numeric score should be 0, got %d", r.StylePreservation)
	}
}

func TestNeedsRefine(t *testing.T) {
	cases := []struct {
		name  string
		state TranslationState
		want  bool
	}{
		{
			"no review",
			TranslationState{},
			false,
		},
		{
			"low quality with corrections",
			TranslationState{Review: &Review{
				OverallQuality:       4,
				SuggestedCorrections: []string{"fix it"},
			}},
			true,
		},
		{
			"low quality without corrections",
			TranslationState{Review: &Review{OverallQuality: 4}},
			false,
		},
		{
			"quality at threshold",
			TranslationState{Review: &Review{
				OverallQuality:       7,
				SuggestedCorrections: []string{"fix it"},
			}},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.NeedsRefine(7); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSampleText(t *testing.T) {
	t.Run("short text repeats whole text", func(t *testing.T) {
		got := sampleText("short")
		for i, s := range got {
			if s != "short" {
				t.Errorf("sample %d: expected full text, got %q", i, s)
			}
		}
	})

	t.Run("long text samples distinct regions", func(t *testing.T) {
		text := strings.Repeat("a", 2000) +
			strings.Repeat("b", 2000) +
			strings.Repeat("c", 2000)

		got := sampleText(text)

		if len(got[0]) != sampleSize || len(got[1]) != sampleSize || len(got[2]) != sampleSize {
			t.Fatalf("unexpected sample sizes: %d %d %d", len(got[0]), len(got[1]), len(got[2]))
		}
		if !strings.HasPrefix(got[0], "a") {
			t.Error("beginning sample should start the text")
		}
		if !strings.Contains(got[1], "b") {
			t.Error("middle sample should cover the middle")
		}
		if !strings.HasSuffix(got[2], "c") {
			t.Error("end sample should end the text")
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 3); got != "hel" {
		t.Errorf("expected hel, got %q", got)
	}
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if got := truncate("hello", 0); got != "hello" {
		t.Errorf("zero limit should not truncate, got %q", got)
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	// é is two bytes; a limit inside it must back up to the boundary
	if got := truncate("café", 4); got != "caf" {
		t.Errorf("expected caf, got %q", got)
	}
	if !utf8.ValidString(truncate(strings.Repeat("é", 100), 25)) {
		t.Error("truncated text should remain valid UTF-8")
	}
}

func TestSampleTextRuneBoundary(t *testing.T) {
	// the leading byte shifts every two-byte rune onto an odd offset so the
	// window edges land mid-rune
	text := "x" + strings.Repeat("é", 4000)

	for i, s := range sampleText(text) {
		if !utf8.ValidString(s) {
			t.Errorf("sample %d: broken UTF-8 at window boundary", i)
		}
	}
}
