package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingUserMgmt struct {
	calls chan struct{}
}

func (m *countingUserMgmt) ResetUnverifiedUsers(context.Context) (int, error) {
	m.calls <- struct{}{}
	return 0, nil
}

func TestNewResetUnverifiedTask_InvalidSchedule(t *testing.T) {
	task, err := NewResetUnverifiedTask("not a schedule", &countingUserMgmt{calls: make(chan struct{}, 1)}, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, task)
}

func TestNewResetUnverifiedTask_Runs(t *testing.T) {
	mgmt := &countingUserMgmt{calls: make(chan struct{}, 4)}
	task, err := NewResetUnverifiedTask("@every 1s", mgmt, zap.NewNop())
	require.NoError(t, err)

	select {
	case <-mgmt.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("定时任务未执行")
	}

	select {
	case <-task.Stop().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("定时任务未能停止")
	}
}
