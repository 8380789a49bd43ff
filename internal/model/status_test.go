package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, true},
		{TaskStatusDownloading, true},
		{TaskStatusProcessing, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.status.IsActive(), "TaskStatus(%s).IsActive()", test.status)
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, false},
		{TaskStatusDownloading, false},
		{TaskStatusProcessing, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.status.IsFinished(), "TaskStatus(%s).IsFinished()", test.status)
	}
}

func TestTaskStatus_String(t *testing.T) {
	assert.Equal(t, "Downloading", TaskStatusDownloading.String())
}
