package customers

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// MaxRecommendations caps how many catalog candidates are considered.
const MaxRecommendations = 3

// CustomerAnalytics is the segmentation view of a customer.
type CustomerAnalytics struct {
	CustomerID      string                `json:"customer_id"`
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	TotalOrders     int                   `json:"total_orders"`
	LifetimeValue   decimal.Decimal       `json:"lifetime_value"`
	CustomerSegment enums.CustomerSegment `json:"customer_segment"`
	EngagementLevel enums.EngagementLevel `json:"engagement_level"`
	Recommendation  string                `json:"recommendation"`
}

// Recommendation is one suggested product.
type Recommendation struct {
	ProductName    string          `json:"product_name"`
	SKU            string          `json:"sku"`
	Price          decimal.Decimal `json:"price"`
	RelevanceScore int             `json:"relevance_score"`
	Reason         string          `json:"reason"`
}

// RecommendationList is the result of Recommend.
type RecommendationList struct {
	Customer             string                `json:"customer"`
	CustomerID           string                `json:"customer_id"`
	Segment              enums.CustomerSegment `json:"segment"`
	Category             string                `json:"category,omitempty"`
	Recommendations      []Recommendation      `json:"recommendations"`
	TotalRecommendations int                   `json:"total_recommendations"`
}
