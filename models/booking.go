package models

import "time"

// SymptomAnalysis is the structured result of symptom classification.
type SymptomAnalysis struct {
	Symptoms              []string `json:"symptoms"`
	RecommendedSpecialist string   `json:"recommended_specialist"`
	SpecialistDescription string   `json:"specialist_description"`
	Confidence            float64  `json:"confidence"`
	Reasoning             string   `json:"reasoning"`
}

// BookingSummary is the pre-confirmation payload shown to the user after a
// valid slot selection.
type BookingSummary struct {
	Doctor         Doctor          `json:"doctor"`
	Hospital       HospitalSummary `json:"hospital"`
	Slot           TimeSlot        `json:"slot"`
	SpecialistType string          `json:"specialist_type"`
	Symptoms       []string        `json:"symptoms"`
}

// Booking is the immutable snapshot taken when the user confirms a slot.
type Booking struct {
	BookingID      string    `json:"booking_id"`
	Doctor         Doctor    `json:"doctor"`
	Hospital       Hospital  `json:"hospital"`
	SelectedSlot   TimeSlot  `json:"selected_slot"`
	SpecialistType string    `json:"specialist_type"`
	Symptoms       []string  `json:"symptoms"`
	BookingTime    time.Time `json:"booking_time"`
	Guidelines     []string  `json:"guidelines"`
}
