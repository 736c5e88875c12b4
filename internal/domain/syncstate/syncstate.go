package syncstate

import (
	"time"

	"github.com/google/uuid"
)

// Entity identifies one synchronized collection. Watermarks are keyed by
// entity.
type Entity string

const (
	EntityMembers                Entity = "members"
	EntityVotes                  Entity = "votes"
	EntityVoteCasts              Entity = "vote_casts"
	EntityBills                  Entity = "bills"
	EntityInterventions          Entity = "interventions"
	EntityCommitteeInterventions Entity = "committee_interventions"
)

// SafetyMargin is subtracted from the stored cursor before filtering, so
// records written near the previous pass boundary are re-delivered. The
// idempotent upsert absorbs the duplicates.
const SafetyMargin = 5 * time.Minute

// AdjustedSince returns the effective filter boundary for a cursor. A nil
// cursor means full backfill: no filter.
func AdjustedSince(cursor *time.Time) *time.Time {
	if cursor == nil {
		return nil
	}
	adjusted := cursor.Add(-SafetyMargin)
	return &adjusted
}

// RunStatus is the lifecycle state of one orchestrated sync run.
type RunStatus string

const (
	RunRunning   RunStatus = "RUNNING"
	RunCompleted RunStatus = "COMPLETED"
	RunFailed    RunStatus = "FAILED"
)

// Run summarizes one orchestrated pass over all entities.
type Run struct {
	RunID      uuid.UUID      `json:"run_id"`
	Parliament string         `json:"parliament"`
	Session    string         `json:"session"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
	Status     RunStatus      `json:"status"`
	Error      string         `json:"error,omitempty"`
	Counts     map[string]int `json:"counts"`
}

// NewRun starts a run record for the target session.
func NewRun(parliament, session string) *Run {
	return &Run{
		RunID:      uuid.New(),
		Parliament: parliament,
		Session:    session,
		StartedAt:  time.Now().UTC(),
		Status:     RunRunning,
		Counts:     map[string]int{},
	}
}

// Finish closes the run with the given status.
func (r *Run) Finish(status RunStatus, errMsg string) {
	now := time.Now().UTC()
	r.FinishedAt = &now
	r.Status = status
	r.Error = errMsg
}

// DeadLetter records a batch write that failed and was skipped. The next
// sync pass re-fetches the affected records because the entity's watermark
// only advances on a fully successful pass.
type DeadLetter struct {
	ID         int64          `json:"id"`
	Entity     Entity         `json:"entity"`
	NaturalKey map[string]any `json:"natural_key"`
	Error      string         `json:"error"`
	CreatedAt  time.Time      `json:"created_at"`
}
