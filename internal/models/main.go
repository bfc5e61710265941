// Package models defines the core data structures for users and tasks.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// Task is a single to-do item owned by exactly one user.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`
	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`
	// Title is the short required description of the task.
	Title string `json:"title"`
	// Description holds optional free text about the task.
	Description string `json:"description"`
	// DueDate is the task's due date in "2006-01-02" form.
	DueDate string `json:"due_date"`
	// Status categorizes the task state ("pending", "done", ...).
	// Any string is accepted; no enumeration is enforced.
	Status string `json:"status"`
}
