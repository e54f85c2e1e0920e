package board

// Store is the in-memory task list for one session.
//
// It is the only place task status lives. A Store is not safe for concurrent
// use; callers serialise access the same way they serialise UI events.
type Store struct {
	tasks []Task
	index map[string]int
}

// NewStore builds a store from loaded tasks. The tasks are copied.
func NewStore(tasks []Task) *Store {
	store := &Store{
		tasks: make([]Task, 0, len(tasks)),
		index: make(map[string]int, len(tasks)),
	}
	for _, task := range tasks {
		if _, exists := store.index[task.ID]; exists {
			continue
		}
		store.index[task.ID] = len(store.tasks)
		store.tasks = append(store.tasks, task.Clone())
	}
	return store
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tasks)
}

// Tasks returns a copy of all tasks in display order.
func (s *Store) Tasks() []Task {
	if s == nil || len(s.tasks) == 0 {
		return nil
	}
	tasks := make([]Task, len(s.tasks))
	for i, task := range s.tasks {
		tasks[i] = task.Clone()
	}
	return tasks
}

// First returns the first task in display order.
func (s *Store) First() (Task, bool) {
	if s.Len() == 0 {
		return Task{}, false
	}
	return s.tasks[0].Clone(), true
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (Task, bool) {
	if s == nil {
		return Task{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// SetChecked applies a checkbox toggle to a task: checked completes it,
// unchecked returns it to pending. It returns the new status, or false if
// the task does not exist.
func (s *Store) SetChecked(id string, checked bool) (Status, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[id]
	if !ok {
		return "", false
	}
	status := StatusForChecked(checked)
	s.tasks[i].Status = status
	return status, true
}
