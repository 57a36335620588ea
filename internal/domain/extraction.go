package domain

// Confidence labels how trustworthy an extracted value is.
type Confidence string

// Confidence levels. High is reserved for values taken from structured
// fields; med comes from free-text heuristics; low is the catch-all.
const (
	ConfidenceHigh Confidence = "high"
	ConfidenceMed  Confidence = "med"
	ConfidenceLow  Confidence = "low"
)

// Source names the signal that produced an extracted value.
type Source string

// Extraction sources.
const (
	// SourceStructured means the value came from an explicit structured field
	SourceStructured Source = "structured"

	// SourceDescription means the value was matched in free description text
	SourceDescription Source = "description"

	// SourceCode means the value fell back to a raw offer type code
	SourceCode Source = "code"

	// SourceNone means nothing matched; the value is absent
	SourceNone Source = "none"
)

// Extraction is a value extracted from an offer together with metadata on
// how it was obtained. Present is false when no signal matched; callers are
// expected to hide the detail rather than show a guess as fact.
type Extraction[T any] struct {
	// Value is the extracted value; meaningful only when Present is true
	Value T `json:"value"`

	// Present indicates whether a value was extracted at all
	Present bool `json:"present"`

	// Confidence is high/med/low depending on the signal
	Confidence Confidence `json:"confidence"`

	// Source names the signal that produced the value
	Source Source `json:"source"`
}

// Extracted creates a present Extraction with the given metadata.
func Extracted[T any](value T, confidence Confidence, source Source) Extraction[T] {
	return Extraction[T]{
		Value:      value,
		Present:    true,
		Confidence: confidence,
		Source:     source,
	}
}

// Absent creates an empty Extraction with low confidence, the catch-all
// state when nothing matched.
func Absent[T any]() Extraction[T] {
	return Extraction[T]{
		Confidence: ConfidenceLow,
		Source:     SourceNone,
	}
}

// BedConfig describes a bed configuration extracted from an offer.
type BedConfig struct {
	// Count is the number of beds; zero means unknown
	Count int `json:"count,omitempty"`

	// Type is the bed type (e.g., "King", "Queen")
	Type string `json:"type"`
}
