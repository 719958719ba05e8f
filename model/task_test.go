package model_test

import (
	"testing"
	"time"

	"taskmanager/model"

	"github.com/stretchr/testify/assert"
)

func TestTaskConsistent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{name: "pending without timestamp", task: model.Task{Status: model.StatusPending}, want: true},
		{name: "completed with timestamp", task: model.Task{Status: model.StatusCompleted, CompletedAt: &now}, want: true},
		{name: "completed without timestamp", task: model.Task{Status: model.StatusCompleted}, want: false},
		{name: "incomplete with timestamp", task: model.Task{Status: model.StatusIncomplete, CompletedAt: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Consistent())
		})
	}
}
