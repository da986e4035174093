package store

import (
	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

func (s *Store) GetAllMembers() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, cloneMember(*m))
	}
	return out
}

func (s *Store) GetMemberByID(id int) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.memberIndexLocked(id)
	if i < 0 {
		return models.Member{}, false
	}
	return cloneMember(*s.members[i]), true
}

// GetMembersByFaction returns the roster of a faction in roster order.
func (s *Store) GetMembersByFaction(factionID int) []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.factionLocked(factionID)
	if f == nil {
		return nil
	}
	return s.rosterLocked(f)
}

func (s *Store) rosterLocked(f *faction) []models.Member {
	out := make([]models.Member, 0, len(f.memberIDs))
	for _, id := range f.memberIDs {
		if i := s.memberIndexLocked(id); i >= 0 {
			out = append(out, cloneMember(*s.members[i]))
		}
	}
	return out
}

// AddMember assigns a new id to member and appends it to the faction roster.
// It returns false if the faction does not exist.
func (s *Store) AddMember(member models.Member, factionID int) (models.Member, bool) {
	var added models.Member

	ok := s.mutate(func() bool {
		f := s.factionLocked(factionID)
		if f == nil {
			return false
		}

		m := cloneMember(member)
		m.ID = s.nextMemberIDLocked()
		m.FactionID = factionID
		if m.Status == "" {
			m.Status = models.StatusOffline
		}
		if m.LastSeen == "" {
			m.LastSeen = s.lastSeenLabel(m.Status)
		}
		if m.JoinDate == "" {
			m.JoinDate = s.now().Format(common.DayLayout)
		}

		s.members = append(s.members, &m)
		f.memberIDs = append(f.memberIDs, m.ID)
		f.data.TotalMembers++
		if m.Status == models.StatusOnline {
			s.recountOnlineLocked(f)
		}

		added = cloneMember(m)
		return true
	})

	return added, ok
}

func (s *Store) nextMemberIDLocked() int {
	maxID := 0
	for _, m := range s.members {
		maxID = max(maxID, m.ID)
	}
	return maxID + 1
}

// UpdateMemberStatus sets the status and lastSeen label of a member and
// recounts the online members of its faction. Unknown members and statuses
// are rejected.
func (s *Store) UpdateMemberStatus(memberID int, status models.Status) bool {
	if !status.Valid() {
		return false
	}

	return s.mutate(func() bool {
		i := s.memberIndexLocked(memberID)
		if i < 0 {
			return false
		}

		m := s.members[i]
		m.Status = status
		m.LastSeen = s.lastSeenLabel(status)

		if f := s.factionLocked(m.FactionID); f != nil {
			s.recountOnlineLocked(f)
		}
		return true
	})
}

// UpdateMember merges patch into a member. A status change also refreshes
// lastSeen and the faction online count.
func (s *Store) UpdateMember(memberID int, patch models.MemberPatch) bool {
	if patch.Status != nil && !patch.Status.Valid() {
		return false
	}

	return s.mutate(func() bool {
		i := s.memberIndexLocked(memberID)
		if i < 0 {
			return false
		}

		m := s.members[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Rank != nil {
			m.Rank = *patch.Rank
		}
		if patch.TotalHours != nil {
			m.TotalHours = *patch.TotalHours
		}
		if patch.WeeklyHours != nil {
			m.WeeklyHours = *patch.WeeklyHours
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}
		if patch.Status != nil && *patch.Status != m.Status {
			m.Status = *patch.Status
			m.LastSeen = s.lastSeenLabel(m.Status)
		}

		if f := s.factionLocked(m.FactionID); f != nil {
			s.recountOnlineLocked(f)
		}
		return true
	})
}

// RemoveMember deletes a member from the collection and from its faction
// roster.
func (s *Store) RemoveMember(memberID int) bool {
	return s.mutate(func() bool {
		i := s.memberIndexLocked(memberID)
		if i < 0 {
			return false
		}

		m := s.members[i]
		s.members = append(s.members[:i], s.members[i+1:]...)

		f := s.factionLocked(m.FactionID)
		if f == nil {
			return true
		}
		for j, id := range f.memberIDs {
			if id == memberID {
				f.memberIDs = append(f.memberIDs[:j], f.memberIDs[j+1:]...)
				break
			}
		}
		f.data.TotalMembers = max(f.data.TotalMembers-1, 0)
		if m.Status == models.StatusOnline {
			f.data.OnlineMembers = max(f.data.OnlineMembers-1, 0)
		}
		return true
	})
}

// AddWarning appends an active warning to a member. Id and timestamp are
// assigned by the store.
func (s *Store) AddWarning(memberID int, warning models.Warning) (models.Warning, bool) {
	var added models.Warning

	ok := s.mutate(func() bool {
		i := s.memberIndexLocked(memberID)
		if i < 0 {
			return false
		}

		now := s.now()
		w := warning
		w.ID = common.NewTimeID(now)
		w.Timestamp = now
		w.IsActive = true
		if w.Type == "" {
			w.Type = models.WarningVerbal
		}

		m := s.members[i]
		m.Warnings = append(m.Warnings, w)
		added = w
		return true
	})

	return added, ok
}

// RemoveWarning deactivates a warning. The warning stays in the history.
func (s *Store) RemoveWarning(memberID int, warningID string) bool {
	return s.mutate(func() bool {
		i := s.memberIndexLocked(memberID)
		if i < 0 {
			return false
		}

		m := s.members[i]
		for j := range m.Warnings {
			if m.Warnings[j].ID == warningID {
				m.Warnings[j].IsActive = false
				return true
			}
		}
		return false
	})
}
