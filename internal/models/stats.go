package models

// GlobalStats is computed on demand from the store.
type GlobalStats struct {
	TotalFactions    int `json:"totalFactions"`
	TotalMembers     int `json:"totalMembers"`
	OnlineMembers    int `json:"onlineMembers"`
	AFKMembers       int `json:"afkMembers"`
	OfflineMembers   int `json:"offlineMembers"`
	OnlinePercentage int `json:"onlinePercentage"`
	ActiveWarnings   int `json:"activeWarnings"`
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
}

// FactionStats summarizes one faction roster.
type FactionStats struct {
	FactionID      int     `json:"factionId"`
	Total          int     `json:"total"`
	Online         int     `json:"online"`
	AFK            int     `json:"afk"`
	Offline        int     `json:"offline"`
	TotalHours     float64 `json:"totalHours"`
	WeeklyHours    float64 `json:"weeklyHours"`
	AvgWeeklyHours float64 `json:"avgWeeklyHours"`
	ActiveWarnings int     `json:"activeWarnings"`
}

// PlayTimeStats aggregates closed sessions of one account. Times are in
// milliseconds; TimeByDay is keyed by the UTC start day (YYYY-MM-DD).
type PlayTimeStats struct {
	TotalTime      int64            `json:"totalTime"`
	AverageSession int64            `json:"averageSession"`
	SessionsCount  int              `json:"sessionsCount"`
	TimeByDay      map[string]int64 `json:"timeByDay"`
}

// StorageStats describes the persisted tracker collections.
type StorageStats struct {
	TotalAccounts  int `json:"totalAccounts"`
	ActiveAccounts int `json:"activeAccounts"`
	OnlineAccounts int `json:"onlineAccounts"`
	TotalSessions  int `json:"totalSessions"`
	ActiveSessions int `json:"activeSessions"`
	StorageSize    int `json:"storageSize"`
}
