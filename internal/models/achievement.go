package models

// Achievement ids.
const (
	AchievementEarlyBird    = "early_bird"
	AchievementNightOwl     = "night_owl"
	AchievementMilestone25  = "milestone_25"
	AchievementMilestone50  = "milestone_50"
	AchievementMilestone75  = "milestone_75"
	AchievementMilestone100 = "milestone_100"
	AchievementStreak3      = "streak_3"
	AchievementStreak7      = "streak_7"
	AchievementStreak14     = "streak_14"
	AchievementStreak30     = "streak_30"
)

// Achievement is one entry of the static achievement catalog.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Catalog is the full set of unlockable achievements.
var Catalog = []Achievement{
	{ID: AchievementEarlyBird, Name: "Early Bird", Icon: "🌅", Description: "Log water intake before 9 AM"},
	{ID: AchievementNightOwl, Name: "Night Owl", Icon: "🦉", Description: "Log water intake after 10 PM"},
	{ID: AchievementMilestone25, Name: "Quarter Way", Icon: "💧", Description: "Reach 25% of daily goal"},
	{ID: AchievementMilestone50, Name: "Half Full", Icon: "🌊", Description: "Reach 50% of daily goal"},
	{ID: AchievementMilestone75, Name: "Almost There", Icon: "💪", Description: "Reach 75% of daily goal"},
	{ID: AchievementMilestone100, Name: "Goal Crusher", Icon: "🎉", Description: "Complete daily hydration goal"},
	{ID: AchievementStreak3, Name: "3 Day Streak", Icon: "🔥", Description: "Maintain hydration for 3 consecutive days"},
	{ID: AchievementStreak7, Name: "Week Warrior", Icon: "🔥", Description: "Maintain hydration for 7 consecutive days"},
	{ID: AchievementStreak14, Name: "Two Week Hero", Icon: "🔥", Description: "Maintain hydration for 14 consecutive days"},
	{ID: AchievementStreak30, Name: "Monthly Master", Icon: "🔥", Description: "Maintain hydration for 30 consecutive days"},
}

// CatalogByID returns the catalog entry for id, or nil if unknown.
func CatalogByID(id string) *Achievement {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
