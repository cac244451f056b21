package client

import "testing"

func TestPruneFilters(t *testing.T) {
	filters := Filters{
		"part":         "snippet",
		"id":           "UC123",
		"maxResults":   int64(50),
		"pageToken":    "",
		"q":            "",
		"zeroInt":      0,
		"zeroInt64":    int64(0),
		"falseFlag":    false,
		"nilValue":     nil,
		"emptySlice":   []string{},
		"emptyMap":     map[string]string{},
		"fullSlice":    []string{"a"},
		"trueFlag":     true,
		"nonZeroInt":   7,
		"floatZero":    0.0,
		"floatNonZero": 0.5,
	}

	pruned := PruneFilters(filters)

	wantKept := []string{"part", "id", "maxResults", "fullSlice", "trueFlag", "nonZeroInt", "floatNonZero"}
	wantDropped := []string{"pageToken", "q", "zeroInt", "zeroInt64", "falseFlag", "nilValue", "emptySlice", "emptyMap", "floatZero"}

	for _, key := range wantKept {
		if _, ok := pruned[key]; !ok {
			t.Errorf("Expected key %q to survive pruning", key)
		}
	}

	for _, key := range wantDropped {
		if _, ok := pruned[key]; ok {
			t.Errorf("Expected key %q to be pruned", key)
		}
	}

	// Surviving values pass through unchanged.
	if pruned["part"] != "snippet" {
		t.Errorf("Expected part=snippet, got %v", pruned["part"])
	}
	if pruned["maxResults"] != int64(50) {
		t.Errorf("Expected maxResults=50, got %v", pruned["maxResults"])
	}

	// The input map is not mutated.
	if len(filters) != 16 {
		t.Errorf("Input filter map was mutated, now has %d keys", len(filters))
	}
}

func TestPruneFiltersEmpty(t *testing.T) {
	if got := PruneFilters(Filters{}); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
	if got := PruneFilters(nil); len(got) != 0 {
		t.Errorf("Expected empty result for nil input, got %v", got)
	}
}
