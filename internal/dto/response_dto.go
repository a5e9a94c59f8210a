package dto

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the uniform success envelope for operations with no
// payload beyond a human-readable note.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error builds a failure envelope from a message.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
