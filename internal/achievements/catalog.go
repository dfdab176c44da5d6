// ABOUTME: The static achievement catalog, grouped by category.
// ABOUTME: Declaration order is the stable display order.
package achievements

// milestone builds a single-condition achievement.
func milestone(id, title, desc, icon string, cat Category, rarity Rarity, m Metric, threshold float64) Achievement {
	return Achievement{
		ID:          id,
		Title:       title,
		Description: desc,
		Icon:        icon,
		Category:    cat,
		Rarity:      rarity,
		Requirement: Requirement{{Metric: m, Threshold: threshold}},
	}
}

var catalog = []Achievement{
	// Push-ups
	milestone("pushup_10", "Push-up Starter", "Complete 10 push-ups total", "fitness", CategoryPushUps, RarityCommon, MetricTotalPushUps, 10),
	milestone("pushup_50", "Push-up Enthusiast", "Complete 50 push-ups total", "fitness", CategoryPushUps, RarityCommon, MetricTotalPushUps, 50),
	milestone("pushup_100", "Push-up Warrior", "Complete 100 push-ups total", "fitness", CategoryPushUps, RarityRare, MetricTotalPushUps, 100),
	milestone("pushup_250", "Push-up Champion", "Complete 250 push-ups total", "fitness", CategoryPushUps, RarityRare, MetricTotalPushUps, 250),
	milestone("pushup_500", "Push-up Master", "Complete 500 push-ups total", "trophy", CategoryPushUps, RarityEpic, MetricTotalPushUps, 500),
	milestone("pushup_750", "Push-up Elite", "Complete 750 push-ups total", "trophy", CategoryPushUps, RarityEpic, MetricTotalPushUps, 750),
	milestone("pushup_1000", "Push-up Legend", "Complete 1000 push-ups total", "medal", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 1000),
	milestone("pushup_1500", "Push-up Titan", "Complete 1500 push-ups total", "medal", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 1500),
	milestone("pushup_2000", "Push-up God", "Complete 2000 push-ups total", "diamond", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 2000),
	milestone("pushup_2500", "Push-up Immortal", "Complete 2500 push-ups total", "diamond", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 2500),
	milestone("pushup_3000", "Push-up Transcendent", "Complete 3000 push-ups total", "diamond", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 3000),
	milestone("pushup_5000", "Push-up Universe", "Complete 5000 push-ups total", "diamond", CategoryPushUps, RarityLegendary, MetricTotalPushUps, 5000),

	// Squats
	milestone("squat_10", "Squat Beginner", "Complete 10 squats total", "body", CategorySquats, RarityCommon, MetricTotalSquats, 10),
	milestone("squat_50", "Squat Explorer", "Complete 50 squats total", "body", CategorySquats, RarityCommon, MetricTotalSquats, 50),
	milestone("squat_100", "Squat Soldier", "Complete 100 squats total", "body", CategorySquats, RarityRare, MetricTotalSquats, 100),
	milestone("squat_250", "Squat Warrior", "Complete 250 squats total", "body", CategorySquats, RarityRare, MetricTotalSquats, 250),
	milestone("squat_500", "Squat Champion", "Complete 500 squats total", "trophy", CategorySquats, RarityEpic, MetricTotalSquats, 500),
	milestone("squat_750", "Squat Elite", "Complete 750 squats total", "trophy", CategorySquats, RarityEpic, MetricTotalSquats, 750),
	milestone("squat_1000", "Squat Legend", "Complete 1000 squats total", "medal", CategorySquats, RarityLegendary, MetricTotalSquats, 1000),
	milestone("squat_1500", "Squat Titan", "Complete 1500 squats total", "medal", CategorySquats, RarityLegendary, MetricTotalSquats, 1500),
	milestone("squat_2000", "Squat God", "Complete 2000 squats total", "diamond", CategorySquats, RarityLegendary, MetricTotalSquats, 2000),
	milestone("squat_2500", "Squat Immortal", "Complete 2500 squats total", "diamond", CategorySquats, RarityLegendary, MetricTotalSquats, 2500),
	milestone("squat_3000", "Squat Transcendent", "Complete 3000 squats total", "diamond", CategorySquats, RarityLegendary, MetricTotalSquats, 3000),
	milestone("squat_5000", "Squat Universe", "Complete 5000 squats total", "diamond", CategorySquats, RarityLegendary, MetricTotalSquats, 5000),

	// Abs
	milestone("abs_10", "Core Starter", "Complete 10 abs exercises total", "diamond", CategoryAbs, RarityCommon, MetricTotalAbs, 10),
	milestone("abs_50", "Core Builder", "Complete 50 abs exercises total", "diamond", CategoryAbs, RarityCommon, MetricTotalAbs, 50),
	milestone("abs_100", "Core Warrior", "Complete 100 abs exercises total", "diamond", CategoryAbs, RarityRare, MetricTotalAbs, 100),
	milestone("abs_250", "Core Champion", "Complete 250 abs exercises total", "diamond", CategoryAbs, RarityRare, MetricTotalAbs, 250),
	milestone("abs_500", "Abs Master", "Complete 500 abs exercises total", "trophy", CategoryAbs, RarityEpic, MetricTotalAbs, 500),
	milestone("abs_750", "Abs Elite", "Complete 750 abs exercises total", "trophy", CategoryAbs, RarityEpic, MetricTotalAbs, 750),
	milestone("abs_1000", "Abs Legend", "Complete 1000 abs exercises total", "medal", CategoryAbs, RarityLegendary, MetricTotalAbs, 1000),
	milestone("abs_1500", "Abs Titan", "Complete 1500 abs exercises total", "medal", CategoryAbs, RarityLegendary, MetricTotalAbs, 1500),
	milestone("abs_2000", "Abs God", "Complete 2000 abs exercises total", "diamond", CategoryAbs, RarityLegendary, MetricTotalAbs, 2000),
	milestone("abs_2500", "Abs Immortal", "Complete 2500 abs exercises total", "diamond", CategoryAbs, RarityLegendary, MetricTotalAbs, 2500),
	milestone("abs_3000", "Abs Transcendent", "Complete 3000 abs exercises total", "diamond", CategoryAbs, RarityLegendary, MetricTotalAbs, 3000),
	milestone("abs_5000", "Abs Universe", "Complete 5000 abs exercises total", "diamond", CategoryAbs, RarityLegendary, MetricTotalAbs, 5000),

	// Combined totals
	milestone("total_25", "First Steps", "Complete 25 total exercises", "star", CategoryTotal, RarityCommon, MetricTotalExercises, 25),
	milestone("total_100", "Century Club", "Complete 100 total exercises", "star", CategoryTotal, RarityCommon, MetricTotalExercises, 100),
	milestone("total_250", "Quarter Master", "Complete 250 total exercises", "star", CategoryTotal, RarityRare, MetricTotalExercises, 250),
	milestone("total_500", "Half Thousand", "Complete 500 total exercises", "trophy", CategoryTotal, RarityRare, MetricTotalExercises, 500),
	milestone("total_1000", "Thousand Club", "Complete 1000 total exercises", "trophy", CategoryTotal, RarityEpic, MetricTotalExercises, 1000),
	milestone("total_2000", "Double Thousand", "Complete 2000 total exercises", "medal", CategoryTotal, RarityEpic, MetricTotalExercises, 2000),
	milestone("total_3000", "Triple Threat", "Complete 3000 total exercises", "medal", CategoryTotal, RarityLegendary, MetricTotalExercises, 3000),
	milestone("total_5000", "Five Thousand Strong", "Complete 5000 total exercises", "diamond", CategoryTotal, RarityLegendary, MetricTotalExercises, 5000),
	milestone("total_7500", "Unstoppable Force", "Complete 7500 total exercises", "diamond", CategoryTotal, RarityLegendary, MetricTotalExercises, 7500),
	milestone("total_10000", "Ten Thousand Legend", "Complete 10000 total exercises", "diamond", CategoryTotal, RarityLegendary, MetricTotalExercises, 10000),

	// Streaks
	milestone("streak_3", "Streak Starter", "Maintain a 3-day streak", "flame", CategoryStreaks, RarityCommon, MetricCurrentStreak, 3),
	milestone("streak_7", "Week Warrior", "Maintain a 7-day streak", "flame", CategoryStreaks, RarityCommon, MetricCurrentStreak, 7),
	milestone("streak_14", "Two Week Champion", "Maintain a 14-day streak", "flame", CategoryStreaks, RarityRare, MetricCurrentStreak, 14),
	milestone("streak_21", "Three Week Master", "Maintain a 21-day streak", "flame", CategoryStreaks, RarityRare, MetricCurrentStreak, 21),
	milestone("streak_30", "Monthly Dedication", "Maintain a 30-day streak", "calendar", CategoryStreaks, RarityEpic, MetricCurrentStreak, 30),
	milestone("streak_50", "Fifty Day Hero", "Maintain a 50-day streak", "calendar", CategoryStreaks, RarityEpic, MetricCurrentStreak, 50),
	milestone("streak_75", "Consistency King", "Maintain a 75-day streak", "calendar", CategoryStreaks, RarityEpic, MetricCurrentStreak, 75),
	milestone("streak_100", "Hundred Day Legend", "Maintain a 100-day streak", "trophy", CategoryStreaks, RarityLegendary, MetricCurrentStreak, 100),
	milestone("streak_150", "Unstoppable Streak", "Maintain a 150-day streak", "trophy", CategoryStreaks, RarityLegendary, MetricCurrentStreak, 150),
	milestone("streak_200", "Streak Immortal", "Maintain a 200-day streak", "diamond", CategoryStreaks, RarityLegendary, MetricCurrentStreak, 200),
	milestone("streak_365", "Year Long Warrior", "Maintain a 365-day streak", "diamond", CategoryStreaks, RarityLegendary, MetricCurrentStreak, 365),

	// Levels
	milestone("level_5", "Level Up!", "Reach level 5", "trending-up", CategoryLevels, RarityCommon, MetricLevel, 5),
	milestone("level_10", "Double Digits", "Reach level 10", "trending-up", CategoryLevels, RarityCommon, MetricLevel, 10),
	milestone("level_15", "Fifteen Strong", "Reach level 15", "trending-up", CategoryLevels, RarityRare, MetricLevel, 15),
	milestone("level_20", "Twenty Power", "Reach level 20", "trending-up", CategoryLevels, RarityRare, MetricLevel, 20),
	milestone("level_25", "Quarter Century", "Reach level 25", "trophy", CategoryLevels, RarityEpic, MetricLevel, 25),
	milestone("level_30", "Thirty Titan", "Reach level 30", "trophy", CategoryLevels, RarityEpic, MetricLevel, 30),
	milestone("level_40", "Forty Force", "Reach level 40", "medal", CategoryLevels, RarityEpic, MetricLevel, 40),
	milestone("level_50", "Half Century Hero", "Reach level 50", "medal", CategoryLevels, RarityLegendary, MetricLevel, 50),
	milestone("level_75", "Legendary Status", "Reach level 75", "diamond", CategoryLevels, RarityLegendary, MetricLevel, 75),
	milestone("level_100", "Century Master", "Reach level 100", "diamond", CategoryLevels, RarityLegendary, MetricLevel, 100),

	// XP
	milestone("xp_500", "XP Collector", "Earn 500 total XP", "star", CategoryXP, RarityCommon, MetricXP, 500),
	milestone("xp_1000", "XP Hunter", "Earn 1000 total XP", "star", CategoryXP, RarityCommon, MetricXP, 1000),
	milestone("xp_2500", "XP Warrior", "Earn 2500 total XP", "trophy", CategoryXP, RarityRare, MetricXP, 2500),
	milestone("xp_5000", "XP Master", "Earn 5000 total XP", "trophy", CategoryXP, RarityEpic, MetricXP, 5000),
	milestone("xp_10000", "XP Legend", "Earn 10000 total XP", "medal", CategoryXP, RarityLegendary, MetricXP, 10000),

	// Special combinations
	{
		ID:          "balanced_100",
		Title:       "Balanced Warrior",
		Description: "Complete 100 of each exercise type",
		Icon:        "shield",
		Category:    CategorySpecial,
		Rarity:      RarityEpic,
		Requirement: Requirement{
			{Metric: MetricTotalPushUps, Threshold: 100},
			{Metric: MetricTotalSquats, Threshold: 100},
			{Metric: MetricTotalAbs, Threshold: 100},
		},
	},
	{
		ID:          "balanced_500",
		Title:       "Perfect Balance",
		Description: "Complete 500 of each exercise type",
		Icon:        "shield",
		Category:    CategorySpecial,
		Rarity:      RarityLegendary,
		Requirement: Requirement{
			{Metric: MetricTotalPushUps, Threshold: 500},
			{Metric: MetricTotalSquats, Threshold: 500},
			{Metric: MetricTotalAbs, Threshold: 500},
		},
	},
	{
		ID:          "balanced_1000",
		Title:       "Ultimate Balance",
		Description: "Complete 1000 of each exercise type",
		Icon:        "diamond",
		Category:    CategorySpecial,
		Rarity:      RarityLegendary,
		Requirement: Requirement{
			{Metric: MetricTotalPushUps, Threshold: 1000},
			{Metric: MetricTotalSquats, Threshold: 1000},
			{Metric: MetricTotalAbs, Threshold: 1000},
		},
	},
	{
		ID:          "dedication_master",
		Title:       "Dedication Master",
		Description: "Reach level 50 with a 100+ day streak",
		Icon:        "diamond",
		Category:    CategorySpecial,
		Rarity:      RarityLegendary,
		Requirement: Requirement{
			{Metric: MetricLevel, Threshold: 50},
			{Metric: MetricLongestStreak, Threshold: 100},
		},
	},
	{
		ID:          "ultimate_warrior",
		Title:       "Ultimate Warrior",
		Description: "Complete 10000 total exercises with level 100+",
		Icon:        "diamond",
		Category:    CategorySpecial,
		Rarity:      RarityLegendary,
		Requirement: Requirement{
			{Metric: MetricTotalExercises, Threshold: 10000},
			{Metric: MetricLevel, Threshold: 100},
		},
	},
}

// Catalog returns the full achievement table in declaration order.
func Catalog() []Achievement {
	return catalog
}
