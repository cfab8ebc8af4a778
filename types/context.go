package types

import (
	"fmt"
	"strconv"
	"time"
)

// ValueKind discriminates the typed context value union.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// ContextValue is a typed union for context bag entries
// (string | number | bool | date). Conversion happens explicitly at the
// extractor boundary instead of passing untyped bags through the engine;
// entries with KindInvalid are skipped with a warning.
type ContextValue struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// StringValue wraps a string.
func StringValue(s string) ContextValue { return ContextValue{kind: KindString, str: s} }

// NumberValue wraps a number.
func NumberValue(n float64) ContextValue { return ContextValue{kind: KindNumber, num: n} }

// BoolValue wraps a bool.
func BoolValue(b bool) ContextValue { return ContextValue{kind: KindBool, b: b} }

// TimeValue wraps a timestamp.
func TimeValue(t time.Time) ContextValue { return ContextValue{kind: KindTime, t: t} }

// Kind returns the union discriminator.
func (v ContextValue) Kind() ValueKind { return v.kind }

// IsSet reports whether the value is present and truthy: a non-empty
// string, a non-zero number, true, or a non-zero time.
func (v ContextValue) IsSet() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0
	case KindBool:
		return v.b
	case KindTime:
		return !v.t.IsZero()
	default:
		return false
	}
}

// Text renders the value for entity emission. Invalid values render empty.
func (v ContextValue) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}

// StringContext converts a plain string map into a typed context bag.
// Convenience for callers that only deal in strings.
func StringContext(m map[string]string) map[string]ContextValue {
	out := make(map[string]ContextValue, len(m))
	for k, v := range m {
		out[k] = StringValue(v)
	}
	return out
}

// Entity is one typed fragment extracted from the task or context,
// rendered as "type:value" on the wire.
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// String renders the entity in the canonical "type:value" form.
func (e Entity) String() string { return fmt.Sprintf("%s:%s", e.Type, e.Value) }

// EntityStrings renders a list of entities in canonical form.
func EntityStrings(entities []Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.String())
	}
	return out
}
