package entities

import "time"

// Project is the funded project mutated by the reconciler.
//
// FundsRaised is incremented by the payment amount exactly once per
// completed payment. It is never recomputed by summing payments, so the
// increment must be atomic at the store level.

type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	FundsRaised int64     `json:"funds_raised"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
