package model

import "time"

// CashState is the persisted cash balance entered by the user.
type CashState struct {
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}
