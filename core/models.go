package core

import "time"

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

func IsValidStatus(st TaskStatus) bool {
	return st == StatusPending || st == StatusCompleted
}

type TaskCategory string

const (
	CategoryWork     TaskCategory = "Work"
	CategoryPersonal TaskCategory = "Personal"
	CategoryUrgent   TaskCategory = "Urgent"
)

func IsValidCategory(c TaskCategory) bool {
	return c == CategoryWork || c == CategoryPersonal || c == CategoryUrgent
}

// Identity is the record a successful login or signup leaves behind.
// There is no account table and no credential check: the email is the
// whole identity.
type Identity struct {
	Email string `json:"email"`
}

// Attachment is a file embedded into a task, content carried inline as
// base64 rather than referenced by path.
type Attachment struct {
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	InlineData string `json:"inlineData"`
}

// Task field names follow the persisted tm_tasks_v1 wire format.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Category    TaskCategory `json:"category"`
	Attachment  *Attachment  `json:"attachment,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskInput carries the fields a caller may set when creating a task.
// Zero values fall back to defaults (pending, Work, empty description,
// no attachment).
type TaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	Category    TaskCategory
	Attachment  *Attachment
}

// TaskPatch is a partial update: nil means leave the field alone.
// ID and CreatedAt are immutable and have no place here.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Category    *TaskCategory
	Attachment  *Attachment
	// RemoveAttachment clears the attachment; wins over Attachment.
	RemoveAttachment bool
}
