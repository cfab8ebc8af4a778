package types

// ComplexityLevel is an ordered classification of how demanding a task is.
// It drives budget multipliers and worker eligibility throughout the engine.
type ComplexityLevel int

const (
	ComplexitySimple ComplexityLevel = iota
	ComplexityModerate
	ComplexityComplex
	ComplexityHighlyComplex
	ComplexityCritical
)

// complexityNames maps levels to their wire/config names.
var complexityNames = map[ComplexityLevel]string{
	ComplexitySimple:        "simple",
	ComplexityModerate:      "moderate",
	ComplexityComplex:       "complex",
	ComplexityHighlyComplex: "highly_complex",
	ComplexityCritical:      "critical",
}

// String returns the canonical lowercase name of the level.
func (c ComplexityLevel) String() string {
	if name, ok := complexityNames[c]; ok {
		return name
	}
	return "moderate"
}

// MarshalText serializes the level by name, so JSON output carries
// "critical" rather than the ordinal. Covers map keys as well.
func (c ComplexityLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// AtLeast reports whether c is at or above the given level.
// Comparisons like "at least complex" are meaningful because the
// enumeration is totally ordered.
func (c ComplexityLevel) AtLeast(other ComplexityLevel) bool {
	return c >= other
}

// Valid reports whether c is one of the five defined levels.
func (c ComplexityLevel) Valid() bool {
	return c >= ComplexitySimple && c <= ComplexityCritical
}

// ParseComplexityLevel maps a level name to the enum.
// Unknown names resolve to ComplexityModerate, matching the engine's
// default-substitution behavior for oracle recommendations.
func ParseComplexityLevel(name string) ComplexityLevel {
	for level, n := range complexityNames {
		if n == name {
			return level
		}
	}
	return ComplexityModerate
}

// AllComplexityLevels returns the five levels in ascending order.
func AllComplexityLevels() []ComplexityLevel {
	return []ComplexityLevel{
		ComplexitySimple,
		ComplexityModerate,
		ComplexityComplex,
		ComplexityHighlyComplex,
		ComplexityCritical,
	}
}
