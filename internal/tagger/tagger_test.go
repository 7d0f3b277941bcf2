package tagger

import (
	"reflect"
	"testing"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

func TestTag_EndToEnd(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})

	item := &domain.ContentItem{
		Source:   "tiktok",
		Text:     "I used to lose touch with people until I found a simple system for it.",
		Author:   "jane",
		Likes:    150,
		Comments: 10,
		Shares:   2,
	}

	tags, err := tg.Tag(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tags.HookType != domain.HookPersonalStory {
		t.Errorf("hook_type = %q, want personal_story", tags.HookType)
	}
	if tags.AwarenessStage != domain.StageSolutionAware && tags.AwarenessStage != domain.StageProblemAware {
		t.Errorf("awareness_stage = %q, want solution_aware or problem_aware", tags.AwarenessStage)
	}
	if tags.FitScore <= 0 {
		t.Errorf("fit_score = %v, want > 0", tags.FitScore)
	}
	if tags.ContentType != domain.ContentTypeText {
		t.Errorf("content_type = %q, want text", tags.ContentType)
	}
	if tags.WordCount != 15 {
		t.Errorf("word_count = %d, want 15", tags.WordCount)
	}
}

func TestTag_Idempotent(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})
	item := &domain.ContentItem{
		Source: "instagram",
		Text:   "Losing touch with friends? Save this. Link in bio \U0001F49B",
	}

	first, err := tg.Tag(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tg.Tag(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tagging twice diverged:\n first: %+v\nsecond: %+v", first, second)
	}
}

func TestTag_FitScoreWithinBounds(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})

	texts := []string{
		"",
		"completely unrelated content about cooking pasta",
		"losing touch with friends, forgetting birthdays, keep in touch, feel like a great friend again",
	}
	for _, text := range texts {
		tags, err := tg.Tag(&domain.ContentItem{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tags.FitScore < 0 || tags.FitScore > 1 {
			t.Errorf("fit_score %v out of [0,1] for %q", tags.FitScore, text)
		}
	}
}

func TestTag_EmptyTextDefaults(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})

	tags, err := tg.Tag(&domain.ContentItem{Source: "meta_ads"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags.HookType != domain.HookUnknown {
		t.Errorf("hook_type = %q, want unknown", tags.HookType)
	}
	if tags.FitScore != 0 {
		t.Errorf("fit_score = %v, want 0", tags.FitScore)
	}
	if tags.AwarenessStage != domain.StageUnclassified {
		t.Errorf("awareness_stage = %q, want unclassified", tags.AwarenessStage)
	}
	if len(tags.PainPoints) != 0 {
		t.Errorf("pain_points = %v, want empty", tags.PainPoints)
	}
	if tags.CTAType != domain.CTANone {
		t.Errorf("cta_type = %q, want none", tags.CTAType)
	}
}

func TestTag_ContentTypeFlags(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})

	tests := []struct {
		name string
		item domain.ContentItem
		want string
	}{
		{"video wins over image", domain.ContentItem{HasVideo: true, HasImage: true}, domain.ContentTypeVideo},
		{"image", domain.ContentItem{HasImage: true}, domain.ContentTypeImage},
		{"text fallback", domain.ContentItem{}, domain.ContentTypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := tg.Tag(&tt.item)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tags.ContentType != tt.want {
				t.Errorf("content_type = %q, want %q", tags.ContentType, tt.want)
			}
		})
	}
}

func TestTag_HasEmoji(t *testing.T) {
	tg := New(testOffer(), &mockLogger{})

	tags, _ := tg.Tag(&domain.ContentItem{Text: "call your mom \U0001F499"})
	if !tags.HasEmoji {
		t.Error("expected emoji to be detected")
	}
	tags, _ = tg.Tag(&domain.ContentItem{Text: "call your mom"})
	if tags.HasEmoji {
		t.Error("expected no emoji")
	}
}

func TestClassifyCTA(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"download", "Download it today and never miss a birthday.", domain.CTADownload},
		{"trial", "Start your trial this week.", domain.CTATrial},
		{"link in bio", "The link in bio has everything.", domain.CTALinkBio},
		{"comment", "Drop a comment if this is you.", domain.CTAComment},
		{"save share", "Save this for your Sunday reset.", domain.CTASaveShare},
		{"follow", "Follow for more friendship tips.", domain.CTAFollow},
		{"learn more", "Learn more on our site.", domain.CTALearnMore},
		{"sign up", "Join the waitlist now.", domain.CTASignUp},
		{"none", "Just a thought about friendships.", domain.CTANone},
		{"empty", "", domain.CTANone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyCTA(tt.text); got != tt.want {
				t.Errorf("classifyCTA(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyCTA_FirstMatchWins(t *testing.T) {
	// download is evaluated before link_bio.
	text := "Download the app, link in bio."
	if got := classifyCTA(text); got != domain.CTADownload {
		t.Errorf("got %q, want download", got)
	}
}
