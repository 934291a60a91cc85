package conversation

import (
	"fmt"
	"strings"

	"medibook/models"
	"medibook/services/catalog"
)

const greetingMessage = "Hello! I'm your medical appointment assistant. Please tell me about your medical concern or symptoms, and I'll help you find the right specialist and book an appointment."

const askDifferentSpecialistMessage = "I understand you'd like a different specialist. Could you please tell me which type of specialist you'd prefer, or describe your symptoms again so I can re-analyze?"

const selectFromOptionsMessage = "Please select a doctor and time slot from the options above."

const selectionNotFoundMessage = "I couldn't find the selected option. Please try selecting again."

const reselectSlotMessage = "No problem! Please select a different doctor or time slot:"

const confirmOrBackMessage = "Please confirm your booking by replying **Yes** or **No** to go back and select a different option."

const restartMessage = "Sure! Let's book a new appointment. Please tell me about your medical concern or symptoms."

// bookingGuidelines is the fixed post-booking instruction list attached to
// every confirmed appointment.
var bookingGuidelines = []string{
	"Please arrive 30 minutes before your appointment time for registration formalities.",
	"Carry a valid ID proof (Aadhaar/PAN/Driving License).",
	"Bring any previous medical reports or prescriptions related to your condition.",
	"If you need to cancel or reschedule, please do so at least 4 hours in advance.",
	"Wear a mask and follow COVID-19 safety protocols at the hospital.",
}

func renderAnalysisMessage(analysis models.SymptomAnalysis) string {
	display := catalog.DisplayName(analysis.RecommendedSpecialist)
	return fmt.Sprintf(`I've analyzed your symptoms. Here's what I found:

**Identified Symptoms:** %s

**Recommended Specialist:** %s
**Reason:** %s

%s

Would you like me to find available %ss near you and book an appointment? Please reply with **Yes** to proceed or let me know if you'd prefer a different specialist.`,
		strings.Join(analysis.Symptoms, ", "), display, analysis.Reasoning,
		analysis.SpecialistDescription, display)
}

func renderHospitalsFoundMessage(specialistDisplay string) string {
	return fmt.Sprintf("Great! I found the following %ss near you. Please select a doctor and time slot that works for you.", specialistDisplay)
}

func renderAlternateSpecialistMessage(specialistDisplay string) string {
	return fmt.Sprintf("Sure, I'll find %ss for you. Here are the available options:", specialistDisplay)
}

func renderBookingSummaryMessage(doctor models.Doctor, hospital models.Hospital, slot models.TimeSlot) string {
	return fmt.Sprintf(`Please confirm your appointment booking:

**Doctor:** %s
**Specialization:** %s
**Experience:** %d years
**Rating:** %.1f
**Consultation Fee:** Rs. %d

**Hospital:** %s
**Address:** %s

**Appointment:** %s at %s

Would you like to confirm this booking? Reply **Yes** to confirm or **No** to select a different slot.`,
		doctor.Name, doctor.Specialization, doctor.ExperienceYears, doctor.Rating,
		doctor.ConsultationFee, hospital.Name, hospital.Address, slot.Date, slot.Time)
}

func renderBookingConfirmedMessage(booking models.Booking) string {
	var guidelines strings.Builder
	for _, g := range booking.Guidelines {
		fmt.Fprintf(&guidelines, "- %s\n", g)
	}

	return fmt.Sprintf(`**Appointment Confirmed!**

**Booking ID:** %s

---

**Doctor:** %s
**Specialization:** %s
**Experience:** %d years

**Hospital:** %s
**Address:** %s

**Date & Time:** %s at %s

**Consultation Fee:** Rs. %d

---

**Important Guidelines:**
%s
---

Thank you for using our service! Wishing you good health.`,
		booking.BookingID, booking.Doctor.Name, booking.Doctor.Specialization,
		booking.Doctor.ExperienceYears, booking.Hospital.Name, booking.Hospital.Address,
		booking.SelectedSlot.Date, booking.SelectedSlot.Time,
		booking.Doctor.ConsultationFee, guidelines.String())
}

func renderCompletedReminderMessage(bookingID string) string {
	return fmt.Sprintf("Your appointment (Booking ID: %s) is confirmed. Is there anything else I can help you with? Say 'new appointment' to book another appointment.", bookingID)
}
