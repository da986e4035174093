package store

import "github.com/dmitrijs2005/factionwatch/internal/models"

func (s *Store) GetAllFactions() []models.Faction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Faction, 0, len(s.factions))
	for _, f := range s.factions {
		out = append(out, s.snapshotLocked(f))
	}
	return out
}

func (s *Store) GetFactionByID(id int) (models.Faction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.factionLocked(id)
	if f == nil {
		return models.Faction{}, false
	}
	return s.snapshotLocked(f), true
}

func (s *Store) snapshotLocked(f *faction) models.Faction {
	out := f.data
	out.Members = s.rosterLocked(f)
	return out
}

// AddFaction stores a new, empty faction. Members and aggregates present in
// data are ignored.
func (s *Store) AddFaction(data models.Faction) models.Faction {
	var added models.Faction

	s.mutate(func() bool {
		maxID := 0
		for _, f := range s.factions {
			maxID = max(maxID, f.data.ID)
		}

		entry := &faction{data: data}
		entry.data.ID = maxID + 1
		entry.data.Members = []models.Member{}
		entry.data.TotalMembers = 0
		entry.data.OnlineMembers = 0

		s.factions = append(s.factions, entry)
		added = s.snapshotLocked(entry)
		return true
	})

	return added
}

func (s *Store) UpdateFaction(id int, patch models.FactionPatch) bool {
	return s.mutate(func() bool {
		f := s.factionLocked(id)
		if f == nil {
			return false
		}
		if patch.Name != nil {
			f.data.Name = *patch.Name
		}
		if patch.Color != nil {
			f.data.Color = *patch.Color
		}
		if patch.Type != nil {
			f.data.Type = *patch.Type
		}
		if patch.Description != nil {
			f.data.Description = *patch.Description
		}
		return true
	})
}

// RemoveFaction deletes a faction together with every member that belongs
// to it.
func (s *Store) RemoveFaction(id int) bool {
	return s.mutate(func() bool {
		idx := -1
		for i, f := range s.factions {
			if f.data.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		kept := s.members[:0]
		for _, m := range s.members {
			if m.FactionID != id {
				kept = append(kept, m)
			}
		}
		clear(s.members[len(kept):])
		s.members = kept

		s.factions = append(s.factions[:idx], s.factions[idx+1:]...)
		return true
	})
}
