package models

// Subscription represents a per-customer visit package. Counts are stored as
// stringified integers and visits as delimited cell encodings, matching the
// backing sheet columns.
type Subscription struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	Name        string `json:"name"`
	TotalVisits string `json:"totalVisits"`
	UsedVisits  string `json:"usedVisits"`
	VisitDates  string `json:"visitDates"`
	VisitNotes  string `json:"visitNotes"`
	CreatedAt   string `json:"createdAt"`
}

// Visits decodes the subscription's packed visit cells.
func (s *Subscription) Visits() []Visit {
	return DecodeVisits(s.VisitDates, s.VisitNotes)
}

// SetVisits re-encodes the visit list into the packed cells.
func (s *Subscription) SetVisits(visits []Visit) {
	s.VisitDates = EncodeVisitDates(visits)
	s.VisitNotes = EncodeVisitNotes(visits)
}
