package conversation

import (
	"context"
	"sync"
	"time"

	"medibook/models"
	"medibook/services/availability"
	"medibook/services/intelligence"
)

// ConversationService drives the appointment booking workflow for a session.
type ConversationService interface {
	StartSession(ctx context.Context, sessionID string) (*models.AgentReply, error)
	ProcessMessage(ctx context.Context, sessionID, message string, selection *models.SlotSelection) (*models.AgentReply, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
}

// DefaultConversationService implements ConversationService.
//
// Concurrent requests for distinct sessions proceed in parallel; requests for
// the same session are serialized through a per-session lock so each message
// is handled to completion before the next one mutates state.
type DefaultConversationService struct {
	Store             SessionStore
	Classifier        intelligence.SymptomClassifier
	Availability      availability.Generator
	ClassifierTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDefaultConversationService(
	store SessionStore,
	classifier intelligence.SymptomClassifier,
	generator availability.Generator,
	classifierTimeout time.Duration,
) *DefaultConversationService {
	return &DefaultConversationService{
		Store:             store,
		Classifier:        classifier,
		Availability:      generator,
		ClassifierTimeout: classifierTimeout,
		locks:             make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing requests for one session id.
// Lock entries are never removed; like sessions they live for the process.
func (s *DefaultConversationService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}
