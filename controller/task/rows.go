package task

import (
	"strings"
	"time"

	"taskmanager/model"
)

const placeholderText = "No tasks available. Please add a task."

// Row is one renderable table row. A placeholder row carries only Name and
// the Placeholder flag.
type Row struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Status      model.Status `json:"status,omitempty"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	Style       string       `json:"style,omitempty"`
	Placeholder bool         `json:"placeholder,omitempty"`
}

// StyleFor maps a status onto its row style; unknown statuses get none.
func StyleFor(status model.Status) string {
	switch status {
	case model.StatusCompleted:
		return "success"
	case model.StatusPending:
		return "pending"
	case model.StatusIncomplete:
		return "danger"
	default:
		return ""
	}
}

func matches(t model.Task, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(string(t.Status)), needle)
}

// VisibleTasks filters the cache by the current search term: a task is
// visible iff its name or status contains the term case-insensitively.
// Order is the subscription's delivery order.
func (vm *ViewModel) VisibleTasks() []model.Task {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	visible := make([]model.Task, 0, len(vm.tasks))
	for _, t := range vm.tasks {
		if matches(t, vm.searchTerm) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Table derives the rendered rows: the visible set styled by status, or a
// single placeholder row when nothing is visible.
func (vm *ViewModel) Table() []Row {
	visible := vm.VisibleTasks()
	if len(visible) == 0 {
		return []Row{{Name: placeholderText, Placeholder: true}}
	}

	rows := make([]Row, 0, len(visible))
	for _, t := range visible {
		t := t
		rows = append(rows, Row{
			ID:          t.ID,
			Name:        t.Name,
			Status:      t.Status,
			CreatedAt:   &t.CreatedAt,
			CompletedAt: t.CompletedAt,
			Style:       StyleFor(t.Status),
		})
	}
	return rows
}

// Form is the new-task form's renderable state.
type Form struct {
	DraftName   string       `json:"draftName"`
	DraftStatus model.Status `json:"draftStatus"`
	SearchTerm  string       `json:"searchTerm"`
	Notice      string       `json:"notice,omitempty"`
}

func (vm *ViewModel) FormView() Form {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return Form{
		DraftName:   vm.draftName,
		DraftStatus: vm.draftStatus,
		SearchTerm:  vm.searchTerm,
		Notice:      vm.notice,
	}
}
