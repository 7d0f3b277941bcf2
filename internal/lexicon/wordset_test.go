package lexicon

import "testing"

func TestWordSet_CountDistinctTriggers(t *testing.T) {
	w := NewWordSet([]string{"system", "method", "tracker"})

	// "system" appears twice but counts once; "method" once; "tracker" absent.
	if got := w.Count("a system within a system and a method"); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestWordSet_MatchesWholeWordsOnly(t *testing.T) {
	w := NewWordSet(MechanismWords)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"app inside happy does not hit", "I felt so happy seeing my friends together", 0},
		{"app inside happens does not hit", "Losing touch happens slowly, then all at once.", 0},
		{"app as its own word hits", "This app became a daily habit.", 2},
		{"punctuation bounds a word", "Try the app.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordSet_MultiWordTriggers(t *testing.T) {
	w := NewWordSet([]string{"no pressure", "risk-free"})

	if !w.Contains("Totally no pressure, just try it.") {
		t.Error("phrase trigger must match consecutive words")
	}
	if w.Contains("There is no real pressure here.") {
		t.Error("phrase trigger must not match across intervening words")
	}
	// Hyphenated and spaced spellings tokenize identically.
	if !w.Contains("a risk free trial") {
		t.Error("\"risk-free\" must match \"risk free\"")
	}
}

func TestWordSet_DuplicateTriggersCountOnce(t *testing.T) {
	w := NewWordSet([]string{"habit", "habit", "routine"})

	if got := w.Count("a habit and a routine"); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestWordSet_Empty(t *testing.T) {
	w := NewWordSet(nil)
	if w.Contains("anything") {
		t.Error("empty word set must match nothing")
	}
}
