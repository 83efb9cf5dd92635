// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task represents a single to-do item owned by a user.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Title is the short summary of the task. It is always non-empty.
	Title string `gorm:"size:255;not null"`

	// Description is an optional longer text for the task.
	Description string `gorm:"size:1024"`

	// Completed reports whether the task has been finished.
	Completed bool `gorm:"not null;default:false"`

	// UserID is the ID of the owning user. Every task has exactly one owner,
	// and all reads and writes are scoped to it.
	UserID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time
}
