package format

import (
	"sort"
	"sync"

	goahocorasick "github.com/anknown/ahocorasick"
)

// ChoiceMarkers are the keycap emojis the assistant prefixes numbered options with.
var ChoiceMarkers = []string{"1\ufe0f\u20e3", "2\ufe0f\u20e3", "3\ufe0f\u20e3"}

type ChoiceDetector struct {
	matcher *goahocorasick.Machine
}

// NewChoiceDetector builds the Aho-Corasick automaton over the given markers.
func NewChoiceDetector(markers []string) (ChoiceDetector, error) {
	patterns := make([][]rune, len(markers))
	for i, marker := range markers {
		patterns[i] = []rune(marker)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return ChoiceDetector{}, err
	}
	return ChoiceDetector{matcher: m}, nil
}

// Detect returns every marker found in text, in reading order.
func (d ChoiceDetector) Detect(text string) []string {
	if text == "" {
		return nil
	}
	terms := d.matcher.MultiPatternSearch([]rune(text), false)
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Pos < terms[j].Pos
	})
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		found = append(found, string(term.Word))
	}
	return found
}

var (
	defaultDetector     ChoiceDetector
	defaultDetectorErr  error
	defaultDetectorOnce sync.Once
)

// DetectChoices runs the default marker set over text.
func DetectChoices(text string) []string {
	defaultDetectorOnce.Do(func() {
		defaultDetector, defaultDetectorErr = NewChoiceDetector(ChoiceMarkers)
	})
	if defaultDetectorErr != nil {
		return nil
	}
	return defaultDetector.Detect(text)
}
