package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavingsGoal is a locked target-amount commitment funded from the
// savings bucket. CurrentAmount only ever increases, and completion is
// a one-way transition that fixes the bonus rate.
type SavingsGoal struct {
	AccountID     uuid.UUID `json:"account_id"`
	GoalID        int64     `json:"goal_id"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	TargetDate    time.Time `json:"target_date"`
	Description   string    `json:"description"`
	Completed     bool      `json:"completed"`
	Locked        bool      `json:"locked"`
	BonusAPYBps   int64     `json:"bonus_apy_bps"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsExpired reports whether the goal is past its target date. An
// expired, uncompleted goal still exists but rejects contributions.
func (g *SavingsGoal) IsExpired(now time.Time) bool {
	return now.After(g.TargetDate)
}

// AcceptsContribution reports whether the goal can receive funds at
// the given time.
func (g *SavingsGoal) AcceptsContribution(now time.Time) bool {
	return !g.Completed && g.Locked && !g.IsExpired(now)
}
