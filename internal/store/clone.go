package store

import "github.com/dmitrijs2005/factionwatch/internal/models"

func cloneMember(m models.Member) models.Member {
	out := m
	if m.Warnings != nil {
		out.Warnings = make([]models.Warning, len(m.Warnings))
		copy(out.Warnings, m.Warnings)
	} else {
		out.Warnings = []models.Warning{}
	}
	return out
}

func cloneUser(u models.User) models.User {
	out := u
	if u.Permissions != nil {
		out.Permissions = append([]string(nil), u.Permissions...)
	}
	if u.FactionID != nil {
		fid := *u.FactionID
		out.FactionID = &fid
	}
	return out
}
