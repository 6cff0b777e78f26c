package repository

import "github.com/mergington-high/activities-api/internal/models"

// SeedActivities returns the fixed set of activities the registry starts
// with. The set is established once at process start; only rosters mutate.
func SeedActivities() map[string]models.Activity {
	return map[string]models.Activity{
		"Baseball Team": {
			Description:     "Join the school baseball team and compete in inter-school tournaments",
			Schedule:        "Wednesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Practice tennis fundamentals and play friendly matches",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	}
}
