package jobs

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestSendEmailTaskHandled(t *testing.T) {
	task, err := NewSendEmailTask(SendEmailPayload{
		To:      "a@x.com",
		Subject: "Welcome",
		Body:    "hi",
	})
	require.NoError(t, err)
	require.Equal(t, TaskTypeSendEmail, task.Type())

	require.NoError(t, HandleSendEmailTask(context.Background(), task))
}

func TestSendEmailTaskBadPayload(t *testing.T) {
	task := asynq.NewTask(TaskTypeSendEmail, []byte("not json"))

	err := HandleSendEmailTask(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}
