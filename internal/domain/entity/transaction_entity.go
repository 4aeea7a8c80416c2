package entity

import "time"

// Transaction is a labeled monetary record owned by exactly one user.
// Amount sign carries the semantics: positive is income, negative is
// expense. The owner reference is stamped at creation and never changes.
type Transaction struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Amount    float64   `json:"amount"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
