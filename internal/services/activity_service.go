package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington-high/activities-api/internal/metrics"
	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/mergington-high/activities-api/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrEmailRequired is returned when a signup/unregister request carries no
// email. Presence is the only validation applied to emails.
var ErrEmailRequired = errors.New("email is required")

// ActivityService encapsulates the registration rules for activities.
type ActivityService struct {
	store repository.ActivityStore
}

// NewActivityService creates a new instance of ActivityService.
func NewActivityService(store repository.ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns every activity keyed by name.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]models.Activity, error) {
	activities, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to list activities")
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// SignUp adds email to the activity's roster and returns a confirmation
// message. Fails with repository.ErrActivityNotFound, repository.ErrAlreadySignedUp
// or ErrEmailRequired; on failure the registry is unchanged.
func (s *ActivityService) SignUp(ctx context.Context, activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		metrics.RegistrationOps.WithLabelValues("signup", "invalid").Inc()
		return "", ErrEmailRequired
	}

	size, err := s.store.AddParticipant(ctx, activityName, email)
	if err != nil {
		metrics.RegistrationOps.WithLabelValues("signup", outcomeFor(err)).Inc()
		logger.Log.WithFields(logrus.Fields{
			"activity": activityName,
			"email":    email,
		}).WithError(err).Warn("Signup rejected")
		return "", err
	}

	metrics.RegistrationOps.WithLabelValues("signup", "success").Inc()
	metrics.RosterSize.WithLabelValues(activityName).Set(float64(size))
	logger.Log.WithFields(logrus.Fields{
		"activity": activityName,
		"email":    email,
		"roster":   size,
	}).Info("Participant signed up")

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's roster and returns a
// confirmation message. Fails with repository.ErrActivityNotFound,
// repository.ErrNotSignedUp or ErrEmailRequired.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		metrics.RegistrationOps.WithLabelValues("unregister", "invalid").Inc()
		return "", ErrEmailRequired
	}

	size, err := s.store.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		metrics.RegistrationOps.WithLabelValues("unregister", outcomeFor(err)).Inc()
		logger.Log.WithFields(logrus.Fields{
			"activity": activityName,
			"email":    email,
		}).WithError(err).Warn("Unregister rejected")
		return "", err
	}

	metrics.RegistrationOps.WithLabelValues("unregister", "success").Inc()
	metrics.RosterSize.WithLabelValues(activityName).Set(float64(size))
	logger.Log.WithFields(logrus.Fields{
		"activity": activityName,
		"email":    email,
		"roster":   size,
	}).Info("Participant unregistered")

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadySignedUp), errors.Is(err, repository.ErrNotSignedUp):
		return "conflict"
	default:
		return "error"
	}
}
