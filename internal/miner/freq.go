package miner

import (
	"sort"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

// counter tallies label occurrences while remembering first-seen order,
// so equal counts rank in the order the labels appeared in the input.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if label == "" {
		return
	}
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) addAll(labels []string) {
	for _, label := range labels {
		c.add(label)
	}
}

// top returns the k most frequent labels, count descending, ties broken
// by first appearance.
func (c *counter) top(k int) []domain.FrequencyEntry {
	entries := make([]domain.FrequencyEntry, 0, len(c.order))
	for _, label := range c.order {
		entries = append(entries, domain.FrequencyEntry{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
