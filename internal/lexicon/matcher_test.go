package lexicon

import (
	"reflect"
	"testing"
)

func TestNormalize_FoldsDiacritics(t *testing.T) {
	if got := Normalize("Café TOUCHÉ"); got != "cafe touche" {
		t.Errorf("Normalize = %q, want %q", got, "cafe touche")
	}
}

func TestMatcher_LabelsInCategoryOrder(t *testing.T) {
	m := NewMatcher([]Category{
		{Label: "first", Triggers: []string{"alpha"}},
		{Label: "second", Triggers: []string{"beta", "gamma"}},
		{Label: "third", Triggers: []string{"delta"}},
	})

	got := m.Labels("some delta then beta and alpha")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestMatcher_EmptyLexicon(t *testing.T) {
	m := NewMatcher(nil)
	if m.Contains("anything") {
		t.Error("empty matcher must match nothing")
	}
	if got := m.Labels("anything"); got != nil {
		t.Errorf("Labels on empty matcher = %v, want nil", got)
	}
}

func TestPainCategories_MultipleMatches(t *testing.T) {
	m := NewMatcher(PainCategories)

	labels := m.Labels("We were too busy and slowly drifted apart. I feel guilty about it.")
	want := []string{"losing_touch", "guilt", "too_busy"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Labels = %v, want %v", labels, want)
	}
}
