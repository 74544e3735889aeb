package model

import "time"

// GoalPriority orders savings goals by urgency.
type GoalPriority string

const (
	// PriorityHigh marks goals that should be funded first.
	PriorityHigh GoalPriority = "High"
	// PriorityMedium is the default priority.
	PriorityMedium GoalPriority = "Medium"
	// PriorityLow marks nice-to-have goals.
	PriorityLow GoalPriority = "Low"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	// GoalActive means the goal is still being funded.
	GoalActive GoalStatus = "Active"
	// GoalPaused means funding is temporarily stopped.
	GoalPaused GoalStatus = "Paused"
	// GoalCompleted means the target has been reached.
	GoalCompleted GoalStatus = "Completed"
)

// SavingGoal is a savings target with a deadline. Current is expected to
// stay at or below Target but display math clamps rather than enforces.
type SavingGoal struct {
	Deadline  time.Time
	CreatedAt time.Time
	ID        string
	Name      string
	Category  string
	Priority  GoalPriority
	Status    GoalStatus
	Target    float64
	Current   float64
}

// Progress returns the funded fraction in [0,1], clamped when Current
// exceeds Target.
func (g SavingGoal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target
	if p > 1 {
		return 1
	}
	return p
}

// Remaining returns the unfunded gap, never negative.
func (g SavingGoal) Remaining() float64 {
	if g.Current >= g.Target {
		return 0
	}
	return g.Target - g.Current
}
