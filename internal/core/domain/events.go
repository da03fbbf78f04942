package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a ledger event on the outbound stream.
type EventType string

const (
	EventFundsSplit                 EventType = "FUNDS_SPLIT"
	EventFundsWithdrawn             EventType = "FUNDS_WITHDRAWN"
	EventBucketTransfer             EventType = "BUCKET_TRANSFER"
	EventEmergencyWithdrawRequested EventType = "EMERGENCY_WITHDRAW_REQUESTED"
	EventEmergencyWithdrawExecuted  EventType = "EMERGENCY_WITHDRAW_EXECUTED"
	EventGoalCreated                EventType = "GOAL_CREATED"
	EventGoalCompleted              EventType = "GOAL_COMPLETED"
	EventEmployeeAdded              EventType = "EMPLOYEE_ADDED"
	EventEmployeeUpdated            EventType = "EMPLOYEE_UPDATED"
	EventEmployeeRemoved            EventType = "EMPLOYEE_REMOVED"
	EventPayrollScheduled           EventType = "PAYROLL_SCHEDULED"
	EventPayrollProcessed           EventType = "PAYROLL_PROCESSED"
	EventPaymentExecuted            EventType = "PAYMENT_EXECUTED"
)

// Event is the unit published to the event stream. Downstream history
// and analytics consumers rebuild state from events only; they never
// read the ledger tables. Nonce is a per-account sequence assigned by
// the publisher so consumers can detect gaps and order events.
type Event struct {
	Type      EventType      `json:"type"`
	AccountID uuid.UUID      `json:"account_id"`
	Nonce     int64          `json:"nonce"`
	At        time.Time      `json:"at"`
	Data      map[string]any `json:"data"`
}

// NewFundsSplitEvent records a deposit allocation across buckets.
func NewFundsSplitEvent(accountID uuid.UUID, amount, fee int64, weights SplitWeights, at time.Time) Event {
	return Event{
		Type:      EventFundsSplit,
		AccountID: accountID,
		At:        at,
		Data: map[string]any{
			"amount":  amount,
			"fee":     fee,
			"weights": weights,
		},
	}
}

// NewFundsWithdrawnEvent records an external withdrawal from a bucket.
func NewFundsWithdrawnEvent(accountID uuid.UUID, bucket Bucket, amount int64, at time.Time) Event {
	return Event{
		Type:      EventFundsWithdrawn,
		AccountID: accountID,
		At:        at,
		Data: map[string]any{
			"bucket": bucket.String(),
			"amount": amount,
		},
	}
}

// NewBucketTransferEvent records a move between two internal buckets,
// including automatic overflow moves.
func NewBucketTransferEvent(accountID uuid.UUID, from, to Bucket, amount int64, at time.Time) Event {
	return Event{
		Type:      EventBucketTransfer,
		AccountID: accountID,
		At:        at,
		Data: map[string]any{
			"from":   from.String(),
			"to":     to.String(),
			"amount": amount,
		},
	}
}

// NewEmergencyEvent records an emergency withdrawal request or execution.
func NewEmergencyEvent(t EventType, accountID uuid.UUID, data map[string]any, at time.Time) Event {
	return Event{Type: t, AccountID: accountID, At: at, Data: data}
}

// NewGoalEvent records a savings goal lifecycle transition.
func NewGoalEvent(t EventType, accountID uuid.UUID, goalID int64, data map[string]any, at time.Time) Event {
	if data == nil {
		data = map[string]any{}
	}
	data["goal_id"] = goalID
	return Event{Type: t, AccountID: accountID, At: at, Data: data}
}

// NewPayrollEvent records employee CRUD and batch lifecycle events,
// keyed by the employer account.
func NewPayrollEvent(t EventType, employerID uuid.UUID, data map[string]any, at time.Time) Event {
	return Event{Type: t, AccountID: employerID, At: at, Data: data}
}
