package interfaces

// StatusNotification is the message pushed to the customer-facing channel
// after a status change has been persisted.
type StatusNotification struct {
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number"`
	Status        string `json:"status"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Vehicle       string `json:"vehicle"`
}

// INotifier is the best-effort side channel. StatusChanged must never block
// the caller and never fail the transition: implementations enqueue and
// publish in the background, logging and dropping on error.
type INotifier interface {
	StatusChanged(n StatusNotification)
}
