package customers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

var (
	highEngagementFloor   = decimal.NewFromInt(3000)
	mediumEngagementFloor = decimal.NewFromInt(1000)

	vipPremiumPrice    = decimal.NewFromInt(100)
	goldPremiumPrice   = decimal.NewFromInt(50)
	regularBudgetPrice = decimal.NewFromInt(50)
)

// EngagementFor buckets lifetime value: above 3000 is High, above 1000 Medium.
func EngagementFor(ltv decimal.Decimal) enums.EngagementLevel {
	switch {
	case ltv.GreaterThan(highEngagementFloor):
		return enums.EngagementLevelHigh
	case ltv.GreaterThan(mediumEngagementFloor):
		return enums.EngagementLevelMedium
	default:
		return enums.EngagementLevelLow
	}
}

// RecommendationFor returns the retention playbook for a segment.
func RecommendationFor(segment enums.CustomerSegment) string {
	switch segment {
	case enums.CustomerSegmentVIP:
		return "Offer exclusive early access to new products and premium customer support"
	case enums.CustomerSegmentGold:
		return "Send personalized discount codes and loyalty rewards"
	default:
		return "Engage with targeted email campaigns and special promotions"
	}
}

// RelevanceFor scores a product for a segment.
func RelevanceFor(segment enums.CustomerSegment, price decimal.Decimal) int {
	switch segment {
	case enums.CustomerSegmentVIP:
		if price.GreaterThan(vipPremiumPrice) {
			return 95
		}
		return 85
	case enums.CustomerSegmentGold:
		if price.GreaterThan(goldPremiumPrice) {
			return 88
		}
		return 92
	default:
		if price.LessThan(regularBudgetPrice) {
			return 80
		}
		return 75
	}
}

func reasonFor(segment enums.CustomerSegment) string {
	return fmt.Sprintf("Based on your %s status and purchase history", segment)
}
