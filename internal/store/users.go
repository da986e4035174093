package store

import "github.com/dmitrijs2005/factionwatch/internal/models"

func (s *Store) GetAllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(*u))
	}
	return out
}

func (s *Store) GetUserByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(id)
	if u == nil {
		return models.User{}, false
	}
	return cloneUser(*u), true
}

// GetUserByUsername looks a user up by exact (case-sensitive) username.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(*u), true
		}
	}
	return models.User{}, false
}

func (s *Store) usernameTakenLocked(username string, exceptID int) bool {
	for _, u := range s.users {
		if u.Username == username && u.ID != exceptID {
			return true
		}
	}
	return false
}

// AddUser stores a new user. It returns false if the username is already
// taken; the comparison is case-sensitive.
func (s *Store) AddUser(user models.User) (models.User, bool) {
	var added models.User

	ok := s.mutate(func() bool {
		if s.usernameTakenLocked(user.Username, 0) {
			return false
		}

		maxID := 0
		for _, u := range s.users {
			maxID = max(maxID, u.ID)
		}

		u := cloneUser(user)
		u.ID = maxID + 1
		if u.CreatedAt.IsZero() {
			u.CreatedAt = s.now()
		}
		if u.Permissions == nil {
			u.Permissions = []string{}
		}

		s.users = append(s.users, &u)
		added = cloneUser(u)
		return true
	})

	return added, ok
}

// UpdateUser shallow-merges patch into a user. Renaming a user to a
// username held by another user is rejected.
func (s *Store) UpdateUser(id int, patch models.UserPatch) bool {
	return s.mutate(func() bool {
		u := s.userLocked(id)
		if u == nil {
			return false
		}
		if patch.Username != nil && s.usernameTakenLocked(*patch.Username, id) {
			return false
		}

		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Permissions != nil {
			u.Permissions = append([]string(nil), patch.Permissions...)
		}
		if patch.IsBlocked != nil {
			u.IsBlocked = *patch.IsBlocked
		}
		if patch.FactionID != nil {
			fid := *patch.FactionID
			u.FactionID = &fid
		}
		if patch.LastLogin != nil {
			u.LastLogin = *patch.LastLogin
		}
		if patch.LastActivity != nil {
			u.LastActivity = *patch.LastActivity
		}
		return true
	})
}

func (s *Store) ToggleUserBlock(id int) bool {
	return s.mutate(func() bool {
		u := s.userLocked(id)
		if u == nil {
			return false
		}
		u.IsBlocked = !u.IsBlocked
		return true
	})
}

func (s *Store) RemoveUser(id int) bool {
	return s.mutate(func() bool {
		for i, u := range s.users {
			if u.ID == id {
				s.users = append(s.users[:i], s.users[i+1:]...)
				return true
			}
		}
		return false
	})
}
