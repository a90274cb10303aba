package models

// SubscriptionType is a template for how many visits a new subscription grants
type SubscriptionType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Visits    string `json:"visits"`
	CreatedAt string `json:"createdAt"`
}
