package response

// Envelope is the body of every successful API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
