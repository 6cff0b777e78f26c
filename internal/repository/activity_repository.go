package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/pkg/logger"
)

// Sentinel errors for the registration rules. The store detects them inside
// its critical section so callers can match with errors.Is.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this activity")
	ErrNotSignedUp      = errors.New("not signed up for this activity")
)

// ActivityStore abstracts the activity registry so a durable implementation
// can replace the in-memory one without touching the service layer.
type ActivityStore interface {
	// GetAll returns a copy of every activity keyed by name.
	GetAll(ctx context.Context) (map[string]models.Activity, error)
	// Get returns a copy of one activity, or ErrActivityNotFound.
	Get(ctx context.Context, name string) (models.Activity, error)
	// AddParticipant appends email to the activity's roster and returns the
	// new roster size. Fails with ErrActivityNotFound or ErrAlreadySignedUp.
	AddParticipant(ctx context.Context, name, email string) (int, error)
	// RemoveParticipant removes email from the activity's roster and returns
	// the new roster size. Fails with ErrActivityNotFound or ErrNotSignedUp.
	RemoveParticipant(ctx context.Context, name, email string) (int, error)
}

// MemoryStore keeps the whole registry in memory. Every check-then-mutate
// runs under the mutex, so concurrent signups cannot race into duplicates.
// State lives for the process lifetime only.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewMemoryStore creates a store pre-populated with the given activities.
func NewMemoryStore(seed map[string]models.Activity) *MemoryStore {
	activities := make(map[string]*models.Activity, len(seed))
	for name, activity := range seed {
		copied := activity.Clone()
		activities[name] = &copied
	}
	return &MemoryStore{activities: activities}
}

// GetAll returns a snapshot of the registry. Participant slices are copied so
// callers never alias store state.
func (s *MemoryStore) GetAll(_ context.Context) (map[string]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]models.Activity, len(s.activities))
	for name, activity := range s.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// Get returns a snapshot of a single activity by name.
func (s *MemoryStore) Get(_ context.Context, name string) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// AddParticipant appends email to the activity's roster. Capacity is advisory
// metadata and is deliberately not enforced here.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		logger.Log.WithField("activity", name).Warn("Signup attempt for unknown activity")
		return 0, ErrActivityNotFound
	}

	for _, participant := range activity.Participants {
		if participant == email {
			return len(activity.Participants), ErrAlreadySignedUp
		}
	}

	activity.Participants = append(activity.Participants, email)
	return len(activity.Participants), nil
}

// RemoveParticipant removes email from the activity's roster, preserving the
// order of the remaining participants.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		logger.Log.WithField("activity", name).Warn("Unregister attempt for unknown activity")
		return 0, ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return len(activity.Participants), nil
		}
	}
	return len(activity.Participants), ErrNotSignedUp
}
