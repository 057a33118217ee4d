package domain

// Variant selects the numeric type used by the calculator.
type Variant string

// Available calculator variants.
const (
	// VariantInt parses operands as int64 and truncates on division.
	VariantInt Variant = "int"

	// VariantFloat parses operands as float64.
	VariantFloat Variant = "float"
)

// AllVariants returns all calculator variants.
func AllVariants() []Variant {
	return []Variant{VariantInt, VariantFloat}
}

// IsValid returns true if the variant is recognised.
func (v Variant) IsValid() bool {
	return v == VariantInt || v == VariantFloat
}

// String returns the string representation.
func (v Variant) String() string {
	return string(v)
}

// Description returns a human-readable description of the variant.
func (v Variant) Description() string {
	switch v {
	case VariantInt:
		return "Integer (64-bit, truncating division)"
	case VariantFloat:
		return "Floating point (IEEE-754 double)"
	default:
		return unknownDescription
	}
}

// OverflowPolicy decides what integer arithmetic does when a result does not
// fit in an int64.
type OverflowPolicy string

// Available overflow policies.
const (
	// OverflowFail reports ErrOverflow.
	OverflowFail OverflowPolicy = "fail"

	// OverflowWrap returns the two's-complement wrapped result.
	OverflowWrap OverflowPolicy = "wrap"

	// OverflowSaturate clamps to math.MinInt64 or math.MaxInt64.
	OverflowSaturate OverflowPolicy = "saturate"
)

// AllOverflowPolicies returns all overflow policies.
func AllOverflowPolicies() []OverflowPolicy {
	return []OverflowPolicy{OverflowFail, OverflowWrap, OverflowSaturate}
}

// IsValid returns true if the policy is recognised.
func (p OverflowPolicy) IsValid() bool {
	switch p {
	case OverflowFail, OverflowWrap, OverflowSaturate:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p OverflowPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p OverflowPolicy) Description() string {
	switch p {
	case OverflowFail:
		return "Fail (report an overflow error)"
	case OverflowWrap:
		return "Wrap (two's-complement wraparound)"
	case OverflowSaturate:
		return "Saturate (clamp to the int64 range)"
	default:
		return unknownDescription
	}
}
