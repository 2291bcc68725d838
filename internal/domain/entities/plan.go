package entities

// DefaultPlanDurationDays is applied when the plan lookup fails or the plan
// does not carry a duration.
const DefaultPlanDurationDays = 30

// Plan describes a subscription plan. Duration drives the expires_at
// computed at activation time.

type Plan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	DurationDays int    `json:"duration_days"`
}
