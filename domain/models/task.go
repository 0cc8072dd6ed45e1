package models

import (
	"time"

	"github.com/google/uuid"
)

// Task status values. Any of them may be written at any time; the registry
// does not enforce forward-only transitions.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	DueDate     time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;default:'Pending'"`
	Priority    string    `gorm:"not null;default:'Medium'"`
	AssignedTo  uuid.UUID `gorm:"not null;index"`
	AssignedBy  uuid.UUID `gorm:"not null;index"`
	Assignee    *User     `gorm:"foreignKey:AssignedTo"`
	Assigner    *Admin    `gorm:"foreignKey:AssignedBy"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidDueDate holds only at creation time; field updates do not re-check it.
func ValidDueDate(due, now time.Time) bool {
	return !due.Before(now)
}
