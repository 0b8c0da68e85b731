package enums

import "fmt"

// CustomerSegment is the fixed loyalty tier assigned to a customer.
type CustomerSegment string

const (
	CustomerSegmentVIP     CustomerSegment = "VIP"
	CustomerSegmentGold    CustomerSegment = "Gold"
	CustomerSegmentRegular CustomerSegment = "Regular"
)

var validCustomerSegments = []CustomerSegment{
	CustomerSegmentVIP,
	CustomerSegmentGold,
	CustomerSegmentRegular,
}

// CustomerSegments returns the segments from highest to lowest tier.
func CustomerSegments() []CustomerSegment {
	out := make([]CustomerSegment, len(validCustomerSegments))
	copy(out, validCustomerSegments)
	return out
}

// String implements fmt.Stringer.
func (s CustomerSegment) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomerSegment.
func (s CustomerSegment) IsValid() bool {
	for _, candidate := range validCustomerSegments {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCustomerSegment converts raw input into a CustomerSegment.
func ParseCustomerSegment(value string) (CustomerSegment, error) {
	for _, candidate := range validCustomerSegments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer segment %q", value)
}

// EngagementLevel is derived from a customer's lifetime value.
type EngagementLevel string

const (
	EngagementLevelHigh   EngagementLevel = "High"
	EngagementLevelMedium EngagementLevel = "Medium"
	EngagementLevelLow    EngagementLevel = "Low"
)

// String implements fmt.Stringer.
func (e EngagementLevel) String() string {
	return string(e)
}
