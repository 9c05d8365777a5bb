package streak

type Streaks struct {
	Saver     int `json:"saver"`
	Budgeting int `json:"budgeting"`
}

type StreaksView struct {
	Streaks           Streaks       `json:"streaks"`
	Level             Level         `json:"level"`
	Achievements      []Achievement `json:"achievements"`
	EarnedCount       int           `json:"earned_count"`
	AchievementPoints int           `json:"achievement_points"`
	Leaderboard       []Entry       `json:"leaderboard"`
	Stale             bool          `json:"stale"`
}
