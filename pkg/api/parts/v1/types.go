// Package partsv1 holds the JSON bodies of the parts HTTP API.
package partsv1

// Part is a stored part as returned to clients.
type Part struct {
	MongoID     string  `json:"_id"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Description *string `json:"description"`
	// Set only on single part reads when Stock is zero.
	Status string `json:"status,omitempty"`
}

// PartRequest is the body of create and update requests. Nil fields were
// absent from the JSON document.
type PartRequest struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	Description *string  `json:"description"`
}

type InsertedResponse struct {
	InsertedID string `json:"inserted_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
