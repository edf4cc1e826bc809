package dto

// MessageResponse is the body of errors and bare acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
