package models

// TimeSlot is a bookable appointment slot for a doctor.
type TimeSlot struct {
	SlotID    string `json:"slot_id"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// Doctor describes one doctor inside a hospital listing. Doctor identifiers
// are regenerated on every availability request; they are only valid against
// the hospital list held in the same session.
type Doctor struct {
	DoctorID        string     `json:"doctor_id"`
	Name            string     `json:"name"`
	Specialization  string     `json:"specialization"`
	ExperienceYears int        `json:"experience_years"`
	Rating          float64    `json:"rating"`
	ConsultationFee int        `json:"consultation_fee"`
	HospitalID      string     `json:"hospital_id"`
	AvailableSlots  []TimeSlot `json:"available_slots"`
}

// Hospital is one level of the hospital → doctor → slot offer tree.
type Hospital struct {
	HospitalID string   `json:"hospital_id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	DistanceKm float64  `json:"distance_km"`
	Rating     float64  `json:"rating"`
	Doctors    []Doctor `json:"doctors"`
}

// HospitalSummary is the trimmed hospital record embedded in booking summaries.
type HospitalSummary struct {
	HospitalID string  `json:"hospital_id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Rating     float64 `json:"rating"`
}

// Summary returns the trimmed form used in booking summary payloads.
func (h Hospital) Summary() HospitalSummary {
	return HospitalSummary{
		HospitalID: h.HospitalID,
		Name:       h.Name,
		Address:    h.Address,
		Rating:     h.Rating,
	}
}

// SlotSelection is the structured payload a client sends while the session is
// in slot_selection: the (hospital, doctor, slot) triple picked from the offer.
type SlotSelection struct {
	DoctorID   string `json:"doctor_id"`
	HospitalID string `json:"hospital_id"`
	SlotID     string `json:"slot_id"`
}

// Complete reports whether all three identifiers are present.
func (sel SlotSelection) Complete() bool {
	return sel.DoctorID != "" && sel.HospitalID != "" && sel.SlotID != ""
}
