package satchel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkruglov/satchel"
)

func TestDescribe(t *testing.T) {
	tt := []struct {
		status   satchel.Status
		expected string
	}{
		{satchel.StatusPending, "Waiting..."},
		{satchel.StatusRunning, "In progress..."},
		{satchel.StatusCompleted, "Done!"},
		{satchel.StatusFailed, "Done!"},
		{satchel.Status(99), "Unknown status"},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.expected, satchel.Describe(tc.status))
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", satchel.StatusPending.String())
	assert.Equal(t, "running", satchel.StatusRunning.String())
	assert.Equal(t, "completed", satchel.StatusCompleted.String())
	assert.Equal(t, "failed", satchel.StatusFailed.String())
	assert.Equal(t, "unknown", satchel.Status(0).String())
}
