package enums

import (
	"fmt"
	"strings"
)

// ReportPeriod labels a sales report. The label is informational only.
type ReportPeriod string

const (
	ReportPeriodDay   ReportPeriod = "day"
	ReportPeriodWeek  ReportPeriod = "week"
	ReportPeriodMonth ReportPeriod = "month"
	ReportPeriodYear  ReportPeriod = "year"
)

// DefaultReportPeriod is used when the caller does not supply a period.
const DefaultReportPeriod = ReportPeriodWeek

var validReportPeriods = []ReportPeriod{
	ReportPeriodDay,
	ReportPeriodWeek,
	ReportPeriodMonth,
	ReportPeriodYear,
}

// ReportPeriodNames returns the supported periods as plain strings.
func ReportPeriodNames() []string {
	out := make([]string, 0, len(validReportPeriods))
	for _, p := range validReportPeriods {
		out = append(out, string(p))
	}
	return out
}

// String implements fmt.Stringer.
func (p ReportPeriod) String() string {
	return string(p)
}

// Title returns the capitalised label, e.g. "Week".
func (p ReportPeriod) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// IsValid reports whether the value is a known ReportPeriod.
func (p ReportPeriod) IsValid() bool {
	for _, candidate := range validReportPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseReportPeriod converts raw input into a ReportPeriod. Matching is
// case-insensitive and an empty value yields DefaultReportPeriod.
func ParseReportPeriod(value string) (ReportPeriod, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return DefaultReportPeriod, nil
	}
	for _, candidate := range validReportPeriods {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report period %q", value)
}
