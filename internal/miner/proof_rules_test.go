package miner

import (
	"reflect"
	"testing"
)

func TestProofStyles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"screen demo",
			"Watch me set this up in real time, full screen recording.",
			[]string{ProofScreenDemo},
		},
		{
			"testimonial",
			"I was skeptical at first but this app changed my life.",
			[]string{ProofTestimonial},
		},
		{
			"numeric proof",
			"Over 12,000 people already use this every week.",
			[]string{ProofNumericProof},
		},
		{
			"before after",
			"I used to forget birthdays all the time. Then I found this.",
			[]string{ProofBeforeAfter},
		},
		{
			"tutorial",
			"How to stay in touch: step 1, open the app.",
			[]string{ProofTutorial},
		},
		{
			"non-exclusive match",
			"I used to lose touch until I found it. 4,000 users agree. Here's how it works.",
			[]string{ProofNumericProof, ProofBeforeAfter, ProofTutorial},
		},
		{
			"no proof language",
			"Just a plain statement about nothing in particular.",
			nil,
		},
		{
			"empty text",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proofStyles(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("proofStyles(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCounterTop(t *testing.T) {
	c := newCounter()
	c.addAll([]string{"b", "a", "a", "c", "b"})
	c.add("")

	got := c.top(2)
	if len(got) != 2 {
		t.Fatalf("top(2) returned %d entries", len(got))
	}
	// b and a both count 2; b was seen first so it wins the tie.
	if got[0].Label != "b" || got[0].Count != 2 {
		t.Errorf("top entry = %+v, want {b 2}", got[0])
	}
	if got[1].Label != "a" || got[1].Count != 2 {
		t.Errorf("second entry = %+v, want {a 2}", got[1])
	}
}
