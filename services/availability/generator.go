package availability

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"medibook/models"
	"medibook/services/catalog"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator produces the hospital → doctor → slot offer tree for a specialist.
type Generator interface {
	HospitalsFor(specialist string) []models.Hospital
}

// DefaultGenerator synthesizes availability from the fixed hospital directory.
// It holds no inventory: doctor identifiers and slot availability flags are
// regenerated independently on every call, so repeated requests for the same
// specialist will not agree on what is bookable.
type DefaultGenerator struct {
	DaysAhead       int
	UnavailableProb float64
	Rand            *rand.Rand
	Now             func() time.Time

	// mu serializes draws from Rand; rand.Rand is not safe for concurrent
	// use and distinct sessions may request availability at the same time.
	mu sync.Mutex
}

// NewDefaultGenerator builds a generator with the given slot window and
// unavailable probability.
func NewDefaultGenerator(daysAhead int, unavailableProb float64) *DefaultGenerator {
	return &DefaultGenerator{
		DaysAhead:       daysAhead,
		UnavailableProb: unavailableProb,
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:             time.Now,
	}
}

var morningTimes = []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}
var eveningTimes = []string{"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM", "06:00 PM", "06:30 PM", "07:00 PM"}

// HospitalsFor returns the hospital listing for a specialist. Unknown
// specialists silently fall back to the default specialist's listing.
func (g *DefaultGenerator) HospitalsFor(specialist string) []models.Hospital {
	key := strings.ReplaceAll(strings.ToLower(specialist), " ", "_")
	seeds, ok := hospitalDirectory[key]
	if !ok {
		utils.GetLogger().Debug("unknown specialist, serving default listing",
			zap.String("specialist", specialist))
		key = catalog.DefaultSpecialist
		seeds = hospitalDirectory[key]
	}

	specialization := catalog.DisplayName(key)

	hospitals := make([]models.Hospital, 0, len(seeds))
	for _, hs := range seeds {
		doctors := make([]models.Doctor, 0, len(hs.Doctors))
		for _, ds := range hs.Doctors {
			doctorID := fmt.Sprintf("doc_%s", uuid.New().String()[:8])
			doctors = append(doctors, models.Doctor{
				DoctorID:        doctorID,
				Name:            ds.Name,
				Specialization:  specialization,
				ExperienceYears: ds.Experience,
				Rating:          ds.Rating,
				ConsultationFee: ds.Fee,
				HospitalID:      hs.HospitalID,
				AvailableSlots:  g.generateTimeSlots(doctorID),
			})
		}
		hospitals = append(hospitals, models.Hospital{
			HospitalID: hs.HospitalID,
			Name:       hs.Name,
			Address:    hs.Address,
			DistanceKm: hs.DistanceKm,
			Rating:     hs.Rating,
			Doctors:    doctors,
		})
	}
	return hospitals
}

// generateTimeSlots builds slots for the next DaysAhead days across the
// morning and evening windows. Each availability flag is drawn independently.
func (g *DefaultGenerator) generateTimeSlots(doctorID string) []models.TimeSlot {
	var slots []models.TimeSlot
	base := g.Now()

	g.mu.Lock()
	defer g.mu.Unlock()
	for day := 1; day <= g.DaysAhead; day++ {
		date := base.AddDate(0, 0, day).Format("2006-01-02")
		for _, label := range append(append([]string{}, morningTimes...), eveningTimes...) {
			slotLabel := strings.ReplaceAll(strings.ReplaceAll(label, " ", "_"), ":", "")
			slots = append(slots, models.TimeSlot{
				SlotID:    fmt.Sprintf("%s_%s_%s", doctorID, date, slotLabel),
				Time:      label,
				Date:      date,
				Available: g.Rand.Float64() > g.UnavailableProb,
			})
		}
	}
	return slots
}
