package domain

type ReceiptLine struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Tickets    int    `json:"tickets"`
	Total      int    `json:"total"`
}

type ReceiptBatch struct {
	Counter   Counter       `json:"counter"`
	Lines     []ReceiptLine `json:"lines"`
	Dismissed bool          `json:"dismissed"`
}

type Snapshot struct {
	Queues        map[Counter][]Customer `json:"queues"`
	Completed     []Customer             `json:"completed"`
	Dismissed     []Customer             `json:"dismissed"`
	NextID        int                    `json:"next_id"`
	AssignCursor  Counter                `json:"assign_cursor"`
	PaymentCursor Counter                `json:"payment_cursor"`
	ReceiptCursor Counter                `json:"receipt_cursor"`
}
