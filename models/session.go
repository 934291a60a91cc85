package models

// WorkflowState identifies where a conversation is in the booking workflow.
//
// Flow: symptom_collection → doctor_confirmation → slot_selection
// → booking_confirmation → completed, with backward edges from
// doctor_confirmation (rejected recommendation) and booking_confirmation
// (declined slot).
type WorkflowState string

const (
	StateSymptomCollection   WorkflowState = "symptom_collection"
	StateDoctorConfirmation  WorkflowState = "doctor_confirmation"
	StateSlotSelection       WorkflowState = "slot_selection"
	StateBookingConfirmation WorkflowState = "booking_confirmation"
	StateCompleted           WorkflowState = "completed"
)

// ChatMessage is a single message in the conversation history.
type ChatMessage struct {
	Role        string                 `json:"role"` // "user" or "assistant"
	Content     string                 `json:"content"`
	MessageType string                 `json:"message_type"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// Session tracks the entire conversation state for one user.
// The session identifier is immutable; all other fields are mutated
// exclusively by the conversation service's transition handlers.
type Session struct {
	SessionID             string        `json:"session_id"`
	CurrentState          WorkflowState `json:"current_state"`
	Messages              []ChatMessage `json:"messages"`
	Symptoms              []string      `json:"symptoms"`
	SymptomDescription    string        `json:"symptom_description,omitempty"`
	RecommendedSpecialist string        `json:"recommended_specialist,omitempty"`
	SpecialistReasoning   string        `json:"specialist_reasoning,omitempty"`
	ConfirmedSpecialist   string        `json:"confirmed_specialist,omitempty"`
	AvailableHospitals    []Hospital    `json:"available_hospitals,omitempty"`
	SelectedDoctorID      string        `json:"selected_doctor_id,omitempty"`
	SelectedHospitalID    string        `json:"selected_hospital_id,omitempty"`
	SelectedSlotID        string        `json:"selected_slot_id,omitempty"`
	Booking               *Booking      `json:"booking,omitempty"`
}

// NewSession creates a fresh session in the initial state.
func NewSession(sessionID string) *Session {
	return &Session{
		SessionID:    sessionID,
		CurrentState: StateSymptomCollection,
	}
}

// Clone returns a deep copy of the session. Transition handlers mutate a
// clone and persist it only on success, so a failed request leaves the stored
// session untouched.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Messages = append([]ChatMessage(nil), s.Messages...)
	cp.Symptoms = append([]string(nil), s.Symptoms...)
	cp.AvailableHospitals = cloneHospitals(s.AvailableHospitals)
	if s.Booking != nil {
		b := *s.Booking
		b.Symptoms = append([]string(nil), s.Booking.Symptoms...)
		b.Guidelines = append([]string(nil), s.Booking.Guidelines...)
		cp.Booking = &b
	}
	return &cp
}

func cloneHospitals(hospitals []Hospital) []Hospital {
	if hospitals == nil {
		return nil
	}
	out := make([]Hospital, len(hospitals))
	for i, h := range hospitals {
		out[i] = h
		out[i].Doctors = make([]Doctor, len(h.Doctors))
		for j, d := range h.Doctors {
			out[i].Doctors[j] = d
			out[i].Doctors[j].AvailableSlots = append([]TimeSlot(nil), d.AvailableSlots...)
		}
	}
	return out
}

// ResetForNewBooking clears every mutable field so the workflow can restart
// from symptom collection. The session identifier and message history are kept.
func (s *Session) ResetForNewBooking() {
	s.CurrentState = StateSymptomCollection
	s.Symptoms = nil
	s.SymptomDescription = ""
	s.RecommendedSpecialist = ""
	s.SpecialistReasoning = ""
	s.ConfirmedSpecialist = ""
	s.AvailableHospitals = nil
	s.SelectedDoctorID = ""
	s.SelectedHospitalID = ""
	s.SelectedSlotID = ""
	s.Booking = nil
}
