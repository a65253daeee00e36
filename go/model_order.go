package storefrontserver

import "time"

// OrderLineRequest is one requested article within an order submission.
// Prices are never accepted from the client.
type OrderLineRequest struct {
	ArticleId string `json:"articleId"`
	Quantity  int32  `json:"quantity"`
}

// OrderSubmission is the payload for creating an order.
type OrderSubmission struct {
	CustomerId string             `json:"customerId"`
	Lines      []OrderLineRequest `json:"lines"`
}

// PaymentConfirmation is the payment provider callback payload.
type PaymentConfirmation struct {
	Succeeded     bool   `json:"succeeded"`
	TransactionId string `json:"transactionId,omitempty"`
}

// Order is the order header returned to clients.
type Order struct {
	Id            string    `json:"id"`
	CustomerId    string    `json:"customerId"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
	TransactionId *string   `json:"transactionId,omitempty"`
}

// OrderLine is a display line of an order. UnitPrice is the snapshot taken
// at submission time.
type OrderLine struct {
	ArticleId   string `json:"articleId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// OrderDetails is an order header together with its resolved lines.
type OrderDetails struct {
	Order Order       `json:"order"`
	Lines []OrderLine `json:"lines"`
}
