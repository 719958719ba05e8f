package model

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
	StatusIncomplete Status = "Incomplete"
)

// Task is the cached copy of a task document. ID is the document id and is
// never stored inside the document itself; OwnerID is the query partition key.
type Task struct {
	ID          string     `firestore:"-" json:"id"`
	Name        string     `firestore:"name" json:"name"`
	Status      Status     `firestore:"status" json:"status"`
	CreatedAt   time.Time  `firestore:"createdAt" json:"createdAt"`
	CompletedAt *time.Time `firestore:"completedAt" json:"completedAt"`
	OwnerID     string     `firestore:"userId" json:"-"`
}

// Consistent invariant: CompletedAt is set iff Status == Completed.
func (t Task) Consistent() bool {
	if t.Status == StatusCompleted {
		return t.CompletedAt != nil
	}
	return t.CompletedAt == nil
}
