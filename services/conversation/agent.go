package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medibook/models"
	"medibook/services/catalog"
	"medibook/services/intelligence"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Token sets for free-text interpretation. Matching is case-insensitive
// substring containment, same as the frontend contract expects.
var (
	specialistAffirmatives = []string{"yes", "yeah", "yep", "sure", "ok", "okay", "proceed", "go ahead", "please", "confirm"}
	bookingAffirmatives    = []string{"yes", "yeah", "yep", "sure", "ok", "okay", "proceed", "go ahead", "confirm"}
	bookingNegatives       = []string{"no", "nope", "cancel", "back", "change"}
	restartKeywords        = []string{"new", "another", "different", "book", "appointment"}
)

func containsAny(lower string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// StartSession returns the greeting reply for a session, creating it lazily
// if it does not exist yet.
func (s *DefaultConversationService) StartSession(ctx context.Context, sessionID string) (*models.AgentReply, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		session = models.NewSession(sessionID)
		session.Messages = append(session.Messages, models.ChatMessage{
			Role:        "assistant",
			Content:     greetingMessage,
			MessageType: models.MessageTypeText,
		})
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	message := greetingMessage
	if len(session.Messages) > 0 {
		message = session.Messages[0].Content
	}
	return &models.AgentReply{
		Message:     message,
		State:       session.CurrentState,
		MessageType: models.MessageTypeText,
		SessionID:   sessionID,
	}, nil
}

// GetSession returns the stored session for inspection.
func (s *DefaultConversationService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Store.Get(ctx, sessionID)
}

// ProcessMessage runs one step of the workflow. The stored session is only
// replaced after the step succeeds, so a failing request leaves it in its
// pre-request state.
func (s *DefaultConversationService) ProcessMessage(ctx context.Context, sessionID, message string, selection *models.SlotSelection) (*models.AgentReply, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		session = models.NewSession(sessionID)
		session.Messages = append(session.Messages, models.ChatMessage{
			Role:        "assistant",
			Content:     greetingMessage,
			MessageType: models.MessageTypeText,
		})
		err = nil
	}

	session.Messages = append(session.Messages, models.ChatMessage{
		Role:        "user",
		Content:     message,
		MessageType: models.MessageTypeText,
	})

	var reply *models.AgentReply
	switch session.CurrentState {
	case models.StateSymptomCollection:
		reply = s.handleSymptomCollection(ctx, session, message)
	case models.StateDoctorConfirmation:
		reply = s.handleDoctorConfirmation(session, message)
	case models.StateSlotSelection:
		reply = s.handleSlotSelection(session, selection)
	case models.StateBookingConfirmation:
		reply, err = s.handleBookingConfirmation(session, message)
	case models.StateCompleted:
		reply = s.handleCompleted(session, message)
	default:
		return nil, &SessionError{Code: "invalidState", Message: fmt.Sprintf("session %s is in unknown state %q", sessionID, session.CurrentState)}
	}
	if err != nil {
		return nil, err
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return reply, nil
}

// handleSymptomCollection stores the symptom description, classifies it and
// advances to doctor_confirmation. Classification failures are absorbed by
// the fixed fallback recommendation and never surface to the caller.
func (s *DefaultConversationService) handleSymptomCollection(ctx context.Context, session *models.Session, symptomsText string) *models.AgentReply {
	session.SymptomDescription = symptomsText

	cctx, cancel := context.WithTimeout(ctx, s.ClassifierTimeout)
	defer cancel()

	analysis, err := s.Classifier.Classify(cctx, symptomsText, catalog.PromptContext())
	if err != nil {
		utils.GetLogger().Warn("symptom classification failed, using fallback",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		analysis = intelligence.FallbackAnalysis(symptomsText, err)
	}

	session.Symptoms = analysis.Symptoms
	session.RecommendedSpecialist = analysis.RecommendedSpecialist
	session.SpecialistReasoning = analysis.Reasoning
	session.CurrentState = models.StateDoctorConfirmation

	return s.reply(session, renderAnalysisMessage(analysis), models.MessageTypeConfirmation, map[string]interface{}{
		"analysis":              analysis,
		"awaiting_confirmation": true,
	})
}

// handleDoctorConfirmation interprets the user's reaction to the recommended
// specialist: affirmative confirms it, a catalog name overrides it, anything
// else keeps prompting.
func (s *DefaultConversationService) handleDoctorConfirmation(session *models.Session, message string) *models.AgentReply {
	lower := strings.ToLower(strings.TrimSpace(message))

	if containsAny(lower, specialistAffirmatives) {
		session.ConfirmedSpecialist = session.RecommendedSpecialist
		return s.presentHospitals(session, renderHospitalsFoundMessage(catalog.DisplayName(session.ConfirmedSpecialist)))
	}

	if id, ok := catalog.MatchText(lower); ok {
		session.RecommendedSpecialist = id
		session.ConfirmedSpecialist = id
		return s.presentHospitals(session, renderAlternateSpecialistMessage(catalog.DisplayName(id)))
	}

	return s.reply(session, askDifferentSpecialistMessage, models.MessageTypeText, nil)
}

// presentHospitals requests a fresh offer for the confirmed specialist and
// advances to slot_selection.
func (s *DefaultConversationService) presentHospitals(session *models.Session, message string) *models.AgentReply {
	session.AvailableHospitals = s.Availability.HospitalsFor(session.ConfirmedSpecialist)
	session.CurrentState = models.StateSlotSelection

	return s.reply(session, message, models.MessageTypeDoctorSelection, map[string]interface{}{
		"hospitals":       session.AvailableHospitals,
		"specialist_type": catalog.DisplayName(session.ConfirmedSpecialist),
	})
}

// handleSlotSelection validates the (hospital, doctor, slot) triple against
// the offer held in the session. An incomplete or unmatched triple re-presents
// the same offer without touching the stored selection; the offer is never
// regenerated on validation failure.
func (s *DefaultConversationService) handleSlotSelection(session *models.Session, selection *models.SlotSelection) *models.AgentReply {
	if selection == nil || !selection.Complete() {
		return s.representOffer(session, selectFromOptionsMessage)
	}

	hospital, doctor, slot, ok := findSelection(session.AvailableHospitals, *selection)
	if !ok {
		return s.representOffer(session, selectionNotFoundMessage)
	}

	session.SelectedDoctorID = selection.DoctorID
	session.SelectedHospitalID = selection.HospitalID
	session.SelectedSlotID = selection.SlotID
	session.CurrentState = models.StateBookingConfirmation

	summary := models.BookingSummary{
		Doctor:         doctor,
		Hospital:       hospital.Summary(),
		Slot:           slot,
		SpecialistType: catalog.DisplayName(session.ConfirmedSpecialist),
		Symptoms:       session.Symptoms,
	}

	return s.reply(session, renderBookingSummaryMessage(doctor, hospital, slot), models.MessageTypeBookingConfirmation, map[string]interface{}{
		"booking_summary": summary,
	})
}

// handleBookingConfirmation finalizes or abandons the proposed slot. Negative
// tokens are checked first so "no" wins over an accidental affirmative match.
func (s *DefaultConversationService) handleBookingConfirmation(session *models.Session, message string) (*models.AgentReply, error) {
	lower := strings.ToLower(strings.TrimSpace(message))

	if containsAny(lower, bookingNegatives) {
		session.CurrentState = models.StateSlotSelection
		return s.representOffer(session, reselectSlotMessage), nil
	}

	if containsAny(lower, bookingAffirmatives) {
		hospital, doctor, slot, ok := findSelection(session.AvailableHospitals, models.SlotSelection{
			DoctorID:   session.SelectedDoctorID,
			HospitalID: session.SelectedHospitalID,
			SlotID:     session.SelectedSlotID,
		})
		if !ok {
			return nil, &SessionError{Code: "selectionLost", Message: fmt.Sprintf("stored selection no longer resolves against the offer for session %s", session.SessionID)}
		}

		booking := models.Booking{
			BookingID:      newBookingID(),
			Doctor:         doctor,
			Hospital:       hospital,
			SelectedSlot:   slot,
			SpecialistType: session.ConfirmedSpecialist,
			Symptoms:       session.Symptoms,
			BookingTime:    time.Now(),
			Guidelines:     bookingGuidelines,
		}
		session.Booking = &booking
		session.CurrentState = models.StateCompleted

		return s.reply(session, renderBookingConfirmedMessage(booking), models.MessageTypeBookingComplete, map[string]interface{}{
			"booking":    booking,
			"booking_id": booking.BookingID,
		}), nil
	}

	return s.reply(session, confirmOrBackMessage, models.MessageTypeBookingConfirmation, nil), nil
}

// handleCompleted either restarts the workflow on a restart keyword or
// repeats the existing booking id.
func (s *DefaultConversationService) handleCompleted(session *models.Session, message string) *models.AgentReply {
	lower := strings.ToLower(message)

	if containsAny(lower, restartKeywords) {
		session.ResetForNewBooking()
		return s.reply(session, restartMessage, models.MessageTypeText, nil)
	}

	bookingID := ""
	if session.Booking != nil {
		bookingID = session.Booking.BookingID
	}
	return s.reply(session, renderCompletedReminderMessage(bookingID), models.MessageTypeText, nil)
}

// representOffer re-shows the offer currently held in the session unchanged.
func (s *DefaultConversationService) representOffer(session *models.Session, message string) *models.AgentReply {
	return s.reply(session, message, models.MessageTypeDoctorSelection, map[string]interface{}{
		"hospitals":       session.AvailableHospitals,
		"specialist_type": catalog.DisplayName(session.ConfirmedSpecialist),
	})
}

// reply appends the assistant message to the history and builds the reply.
func (s *DefaultConversationService) reply(session *models.Session, message, messageType string, data map[string]interface{}) *models.AgentReply {
	session.Messages = append(session.Messages, models.ChatMessage{
		Role:        "assistant",
		Content:     message,
		MessageType: messageType,
		Data:        data,
	})
	return &models.AgentReply{
		Message:     message,
		State:       session.CurrentState,
		MessageType: messageType,
		Data:        data,
		SessionID:   session.SessionID,
	}
}

// findSelection walks the offer tree hospital → doctor → slot and returns the
// matched records. All three levels must match within the same branch.
func findSelection(hospitals []models.Hospital, sel models.SlotSelection) (models.Hospital, models.Doctor, models.TimeSlot, bool) {
	for _, hospital := range hospitals {
		if hospital.HospitalID != sel.HospitalID {
			continue
		}
		for _, doctor := range hospital.Doctors {
			if doctor.DoctorID != sel.DoctorID {
				continue
			}
			for _, slot := range doctor.AvailableSlots {
				if slot.SlotID == sel.SlotID {
					return hospital, doctor, slot, true
				}
			}
			return models.Hospital{}, models.Doctor{}, models.TimeSlot{}, false
		}
		return models.Hospital{}, models.Doctor{}, models.TimeSlot{}, false
	}
	return models.Hospital{}, models.Doctor{}, models.TimeSlot{}, false
}

// newBookingID generates an identifier like APT-3F2A9C01.
func newBookingID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "APT-" + strings.ToUpper(hex[:8])
}
