package store

import (
	"math"

	"github.com/dmitrijs2005/factionwatch/internal/models"
)

// GetGlobalStats is computed from the current collections on every call.
func (s *Store) GetGlobalStats() models.GlobalStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.GlobalStats{
		TotalFactions: len(s.factions),
		TotalMembers:  len(s.members),
		TotalUsers:    len(s.users),
	}

	for _, m := range s.members {
		switch m.Status {
		case models.StatusOnline:
			st.OnlineMembers++
		case models.StatusAFK:
			st.AFKMembers++
		default:
			st.OfflineMembers++
		}
		for _, w := range m.Warnings {
			if w.IsActive {
				st.ActiveWarnings++
			}
		}
	}

	if st.TotalMembers > 0 {
		st.OnlinePercentage = int(math.Round(float64(st.OnlineMembers) / float64(st.TotalMembers) * 100))
	}

	for _, u := range s.users {
		if !u.IsBlocked {
			st.ActiveUsers++
		}
	}

	return st
}
