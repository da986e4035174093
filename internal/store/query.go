package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/factionwatch/internal/models"
)

// TopMembersByActivity returns at most n members ordered by weekly hours,
// then total hours, both descending. n <= 0 returns all of them.
func TopMembersByActivity(members []models.Member, n int) []models.Member {
	out := slices.Clone(members)
	slices.SortStableFunc(out, func(a, b models.Member) int {
		if c := cmp.Compare(b.WeeklyHours, a.WeeklyHours); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalHours, a.TotalHours); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func FilterMembersByStatus(members []models.Member, status models.Status) []models.Member {
	out := make([]models.Member, 0)
	for _, m := range members {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// SearchMembers matches query case-insensitively against name and rank.
// An empty query matches everyone.
func SearchMembers(members []models.Member, query string) []models.Member {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Member, 0)
	for _, m := range members {
		if q == "" || strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Rank), q) {
			out = append(out, m)
		}
	}
	return out
}

func ActiveWarnings(m models.Member) []models.Warning {
	out := make([]models.Warning, 0)
	for _, w := range m.Warnings {
		if w.IsActive {
			out = append(out, w)
		}
	}
	return out
}

// FactionStatistics summarizes the roster of one faction.
func (s *Store) FactionStatistics(factionID int) (models.FactionStats, bool) {
	f, ok := s.GetFactionByID(factionID)
	if !ok {
		return models.FactionStats{}, false
	}

	st := models.FactionStats{FactionID: factionID, Total: len(f.Members)}
	for _, m := range f.Members {
		switch m.Status {
		case models.StatusOnline:
			st.Online++
		case models.StatusAFK:
			st.AFK++
		default:
			st.Offline++
		}
		st.TotalHours += m.TotalHours
		st.WeeklyHours += m.WeeklyHours
		st.ActiveWarnings += len(ActiveWarnings(m))
	}
	if st.Total > 0 {
		st.AvgWeeklyHours = st.WeeklyHours / float64(st.Total)
	}
	return st, true
}
