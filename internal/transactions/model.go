package transactions

import "time"

// Transaction is one signed ledger entry. The sign of Amount is the only
// record of direction: credits are stored positive, debits negative. The
// "type" field of the create request is consumed at the boundary and never
// persisted.
type Transaction struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Amount    float64   `db:"amount" json:"amount"`
	SessionID string    `db:"session_id" json:"session_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateTransactionRequest is the POST / body. Amount and Type are pointers
// so a missing field is distinguishable from a zero value.
type CreateTransactionRequest struct {
	Title  string   `json:"title"`
	Amount *float64 `json:"amount"`
	Type   *string  `json:"type"` // "credit" | "debit"
}

type listResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type getResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type summaryResponse struct {
	Summary summaryBody `json:"summary"`
}

type summaryBody struct {
	Amount float64 `json:"amount"`
}
