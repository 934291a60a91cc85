package models

// AgentReply is the response shape returned for every processed message.
// The shape (message, state, message_type, data, session_id) is the wire
// contract consumed by the chat frontend.
type AgentReply struct {
	Message     string                 `json:"message"`
	State       WorkflowState          `json:"state"`
	MessageType string                 `json:"message_type"`
	Data        map[string]interface{} `json:"data,omitempty"`
	SessionID   string                 `json:"session_id"`
}

// Message types carried by AgentReply.MessageType.
const (
	MessageTypeText                string = "text"
	MessageTypeConfirmation        string = "confirmation"
	MessageTypeDoctorSelection     string = "doctor_selection"
	MessageTypeBookingConfirmation string = "booking_confirmation"
	MessageTypeBookingComplete     string = "booking_complete"
)

// ChatRequest is the inbound payload for the chat endpoint.
type ChatRequest struct {
	Message      string         `json:"message"`
	SessionID    string         `json:"session_id"`
	SelectedData *SlotSelection `json:"selected_data,omitempty"`
}

// SessionRequest is the inbound payload for create-or-resume session.
type SessionRequest struct {
	SessionID string `json:"session_id,omitempty"`
}
