package streak

import "github.com/frahmantamala/student-finance/internal/aggregate"

func BuildStreaksView(points int, streaks Streaks, facts Facts, board []Entry, ownerID string) StreaksView {
	achievements := Achievements(facts)
	earned := aggregate.Where(achievements, func(a Achievement) bool { return a.Earned })

	total := 0
	for _, a := range earned {
		total += a.Points
	}

	leaders := make([]Entry, len(board))
	for i, e := range board {
		e.IsMe = e.ID == ownerID
		leaders[i] = e
	}

	return StreaksView{
		Streaks:           streaks,
		Level:             LevelFor(points),
		Achievements:      achievements,
		EarnedCount:       len(earned),
		AchievementPoints: total,
		Leaderboard:       leaders,
	}
}
