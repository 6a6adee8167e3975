package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// TasksKey is the storage key holding the persisted task collection.
const TasksKey = "tm_tasks_v1"

// TaskStore owns the ordered task collection. Every mutation
// reserializes and rewrites the whole collection under TasksKey; at a
// personal task list's scale incremental persistence would only add
// ways for storage and memory to diverge. The in-memory slice is
// authoritative: a failed write is logged and the operation still
// counts as done.
type TaskStore struct {
	log     *slog.Logger
	storage Storage
	now     Clock
	newID   IDGenerator

	mu    sync.Mutex
	tasks []Task
}

func NewTaskStore(log *slog.Logger, storage Storage, now Clock, newID IDGenerator) *TaskStore {
	return &TaskStore{
		log:     log,
		storage: storage,
		now:     now,
		newID:   newID,
	}
}

// Initialize loads the persisted collection. First ever run (key
// absent) seeds three example tasks; a value that fails to parse
// falls back to an empty collection. Never returns an error to the
// caller.
func (s *TaskStore) Initialize(ctx context.Context) {
	raw, ok, err := s.storage.Get(ctx, TasksKey)
	if err != nil {
		s.log.Warn("task load failed, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ok {
		s.tasks = s.seed()
		s.persist(ctx)
		return
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.log.Warn("corrupt task collection, starting empty", "error", err)
		s.tasks = nil
		return
	}
	s.tasks = tasks
}

func (s *TaskStore) seed() []Task {
	now := s.now()
	mk := func(title, description string, status TaskStatus, category TaskCategory) Task {
		return Task{
			ID:          s.newID(),
			Title:       title,
			Description: description,
			Status:      status,
			Category:    category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []Task{
		mk("Finish project proposal", "Draft and review the project proposal for the new client.", StatusPending, CategoryWork),
		mk("Buy groceries", "Milk, eggs, vegetables, cereal", StatusPending, CategoryPersonal),
		mk("Server patch", "Apply critical security updates", StatusCompleted, CategoryUrgent),
	}
}

// Tasks returns a snapshot of the collection in stored order, newest
// additions first. Callers must not rely on mutating it.
func (s *TaskStore) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return Task{}, false
}

// Add creates a task from in, filling defaults for omitted fields,
// and prepends it to the collection. Validation is the boundary's
// concern, not the store's.
func (s *TaskStore) Add(ctx context.Context, in TaskInput) Task {
	now := s.now()
	t := Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Category:    in.Category,
		Attachment:  cloneAttachment(in.Attachment),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Category == "" {
		t.Category = CategoryWork
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]Task{t}, s.tasks...)
	s.persist(ctx)
	return cloneTask(t)
}

// Update merges p over the task with the given id and stamps
// UpdatedAt. A missing id is a silent no-op; id and CreatedAt never
// change.
func (s *TaskStore) Update(ctx context.Context, id string, p TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Status != nil {
			t.Status = *p.Status
		}
		if p.Category != nil {
			t.Category = *p.Category
		}
		if p.RemoveAttachment {
			t.Attachment = nil
		} else if p.Attachment != nil {
			t.Attachment = cloneAttachment(p.Attachment)
		}
		t.UpdatedAt = s.now()
		s.tasks[i] = t
		s.persist(ctx)
		return
	}
}

// Delete removes the task with the given id; no-op when absent.
func (s *TaskStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Toggle flips a task between pending and completed.
func (s *TaskStore) Toggle(ctx context.Context, id string) {
	s.mu.Lock()
	next := TaskStatus("")
	for _, t := range s.tasks {
		if t.ID == id {
			if t.Status == StatusCompleted {
				next = StatusPending
			} else {
				next = StatusCompleted
			}
			break
		}
	}
	s.mu.Unlock()

	if next == "" {
		return
	}
	s.Update(ctx, id, TaskPatch{Status: &next})
}

// persist rewrites the whole collection. Callers hold the mutex.
func (s *TaskStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.tasks)
	if err != nil {
		s.log.Error("failed to encode task collection", "error", err)
		return
	}
	if err := s.storage.Set(ctx, TasksKey, string(raw)); err != nil {
		s.log.Error("failed to persist task collection", "error", err)
	}
}

func cloneTask(t Task) Task {
	out := t
	out.Attachment = cloneAttachment(t.Attachment)
	return out
}

func cloneAttachment(a *Attachment) *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
