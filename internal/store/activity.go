package store

import "github.com/dmitrijs2005/factionwatch/internal/models"

// AddActivityLog appends an entry to the activity log. Action is not
// checked against the known values.
func (s *Store) AddActivityLog(userID int, action models.Action, details string) models.ActivityLog {
	var entry models.ActivityLog

	s.mutate(func() bool {
		maxID := 0
		for _, l := range s.logs {
			maxID = max(maxID, l.ID)
		}
		entry = models.ActivityLog{
			ID:        maxID + 1,
			UserID:    userID,
			Action:    action,
			Details:   details,
			Timestamp: s.now(),
		}
		s.logs = append(s.logs, entry)
		return true
	})

	return entry
}

func (s *Store) GetAllActivityLogs() []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ActivityLog, len(s.logs))
	copy(out, s.logs)
	return out
}
