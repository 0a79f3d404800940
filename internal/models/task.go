package models

import (
	"fmt"
	"strings"
)

// TaskKind identifies one of the nine daily tasks.
type TaskKind string

const (
	TaskWater         TaskKind = "water"
	TaskWorkout       TaskKind = "workout"
	TaskDiet          TaskKind = "diet"
	TaskAlcohol       TaskKind = "alcohol"
	TaskReading       TaskKind = "read"
	TaskColdShower    TaskKind = "cold_shower"
	TaskMeditate      TaskKind = "meditate"
	TaskSocialMedia   TaskKind = "social_media"
	TaskCriticalTasks TaskKind = "critical"
)

// TaskInfo describes a task for display.
type TaskInfo struct {
	Kind        TaskKind
	Title       string
	Description string
	Icon        string
}

// Tasks lists the nine daily tasks in display and export order. The two
// critical tasks count as the single last entry.
var Tasks = []TaskInfo{
	{
		Kind:        TaskWater,
		Title:       "Drink a gallon of water daily.",
		Description: "Stay hydrated to improve focus, recovery, and energy.",
		Icon:        "💧",
	},
	{
		Kind:        TaskWorkout,
		Title:       "One hour workout or 45 minutes of cardio (minimum)",
		Description: "Push your limits every day. No excuses.",
		Icon:        "🏃",
	},
	{
		Kind:        TaskDiet,
		Title:       "Stick to a diet.",
		Description: "Choose a nutrition plan and follow it strictly, no cheat meals.",
		Icon:        "🥗",
	},
	{
		Kind:        TaskAlcohol,
		Title:       "Alcoholic drink limit.",
		Description: "Limit alcohol to a maximum of 2 days per week: up to 6 drinks per day, and no more than 11 total for the week.",
		Icon:        "🍷",
	},
	{
		Kind:        TaskReading,
		Title:       "Read 10 pages.",
		Description: "Feed your mind with something positive or educational daily.",
		Icon:        "📖",
	},
	{
		Kind:        TaskColdShower,
		Title:       "Take 5 minute cold shower.",
		Description: "Build mental toughness and increase alertness.",
		Icon:        "❄️",
	},
	{
		Kind:        TaskMeditate,
		Title:       "Meditate 10 minutes.",
		Description: "Quiet your mind and stay grounded in the process.",
		Icon:        "🧘",
	},
	{
		Kind:        TaskSocialMedia,
		Title:       "Less than 20 minutes of social media.",
		Description: "Reclaim your attention and focus on what matters.",
		Icon:        "📵",
	},
	{
		Kind:        TaskCriticalTasks,
		Title:       "Two critical tasks.",
		Description: "Focus on two meaningful goals that move you forward.",
		Icon:        "✅",
	},
}

var taskAliases = map[string]TaskKind{
	"water":        TaskWater,
	"workout":      TaskWorkout,
	"diet":         TaskDiet,
	"alcohol":      TaskAlcohol,
	"drink":        TaskAlcohol,
	"read":         TaskReading,
	"reading":      TaskReading,
	"cold_shower":  TaskColdShower,
	"coldshower":   TaskColdShower,
	"shower":       TaskColdShower,
	"meditate":     TaskMeditate,
	"social_media": TaskSocialMedia,
	"socialmedia":  TaskSocialMedia,
	"social":       TaskSocialMedia,
	"critical":     TaskCriticalTasks,
}

// ParseTaskKind resolves a user-supplied task name. Matching is
// case-insensitive and accepts dashes in place of underscores.
func ParseTaskKind(s string) (TaskKind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if kind, ok := taskAliases[key]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTask, s)
}

// Info returns the catalog entry for k.
func (k TaskKind) Info() (TaskInfo, bool) {
	for _, t := range Tasks {
		if t.Kind == k {
			return t, true
		}
	}
	return TaskInfo{}, false
}
