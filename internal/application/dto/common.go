package dto

// ErrorResponse cuerpo de error HTTP: {error, message?}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse respuesta simple de confirmación (borrados).
type MessageResponse struct {
	Message string `json:"message"`
}
