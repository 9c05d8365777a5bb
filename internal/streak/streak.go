// Package streak derives the gamification screen: streaks, points and level,
// achievements earned from the owner's records, and the points leaderboard.
package streak

const PointsPerLevel = 1000

type Level struct {
	Points            int     `json:"points"`
	Level             int     `json:"level"`
	Progress          float64 `json:"progress"`
	PointsToNextLevel int     `json:"points_to_next_level"`
}

// LevelFor starts everyone at level 1 and adds a level per thousand points.
func LevelFor(points int) Level {
	if points < 0 {
		points = 0
	}
	into := points % PointsPerLevel
	return Level{
		Points:            points,
		Level:             points/PointsPerLevel + 1,
		Progress:          float64(into) / 10,
		PointsToNextLevel: PointsPerLevel - into,
	}
}

// Facts are the record-derived inputs achievements are judged on.
type Facts struct {
	SaverStreak     int
	BudgetingStreak int
	Investments     int
	GroupFunds      int
	LoansLent       int
}

type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Earned      bool   `json:"earned"`
}

type rule struct {
	Achievement
	earned func(Facts) bool
}

var rules = []rule{
	{Achievement{ID: 1, Title: "First Week Saver", Description: "Saved money for 7 consecutive days", Points: 50},
		func(f Facts) bool { return f.SaverStreak >= 7 }},
	{Achievement{ID: 2, Title: "Budget Master", Description: "Stayed within budget for 2 weeks", Points: 100},
		func(f Facts) bool { return f.BudgetingStreak >= 14 }},
	{Achievement{ID: 3, Title: "Investment Explorer", Description: "Made your first investment", Points: 75},
		func(f Facts) bool { return f.Investments > 0 }},
	{Achievement{ID: 4, Title: "Social Saver", Description: "Created first group fund", Points: 60},
		func(f Facts) bool { return f.GroupFunds > 0 }},
	{Achievement{ID: 5, Title: "Loan Helper", Description: "Helped a friend with a loan", Points: 80},
		func(f Facts) bool { return f.LoansLent > 0 }},
	{Achievement{ID: 6, Title: "Monthly Milestone", Description: "Complete 30-day saving streak", Points: 200},
		func(f Facts) bool { return f.SaverStreak >= 30 }},
}

func Achievements(f Facts) []Achievement {
	out := make([]Achievement, len(rules))
	for i, r := range rules {
		a := r.Achievement
		a.Earned = r.earned(f)
		out[i] = a
	}
	return out
}
