package workflow_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ishalabs/isha-backend/internal/config"
	"github.com/ishalabs/isha-backend/internal/model/chat"
	"github.com/ishalabs/isha-backend/internal/service/turn"
	"github.com/ishalabs/isha-backend/internal/workflow"
)

func newTestRunner(t *testing.T) *workflow.Runner {
	t.Helper()

	processor := turn.NewProcessor(nil, config.ChatConfig{
		HistoryWindow: 5,
		AckPhrases:    []string{"replying to"},
		AckPrefix:     "I'm replying to your message: ",
	})

	runner, err := workflow.New(context.Background(), processor)
	if err != nil {
		t.Fatalf("workflow.New err: %v", err)
	}
	return runner
}

func TestRunInvokesProcessorOnce(t *testing.T) {
	runner := newTestRunner(t)
	state := &chat.TurnState{
		Messages: []chat.Message{chat.NewUserMessage("hello graph")},
		UserName: "Sam",
	}

	result, err := runner.Run(context.Background(), state)
	if err != nil {
		t.Fatalf("Run err: %v", err)
	}
	if len(result.Messages) != 2 {
		t.Fatalf("expected one appended message, got %d total", len(result.Messages))
	}

	last := result.Messages[len(result.Messages)-1]
	if last.Role != chat.RoleAssistant {
		t.Fatalf("unexpected role: %s", last.Role)
	}
	if !strings.Contains(last.Content, "hello graph") {
		t.Fatal("runner must hand back the processor output unmodified")
	}
}

func TestRunPassesThroughNonUserTail(t *testing.T) {
	runner := newTestRunner(t)
	state := &chat.TurnState{
		Messages: []chat.Message{
			chat.NewUserMessage("hi"),
			chat.NewAssistantMessage("hello"),
		},
		UserName: "Sam",
	}

	result, err := runner.Run(context.Background(), state)
	if err != nil {
		t.Fatalf("Run err: %v", err)
	}
	if len(result.Messages) != 2 {
		t.Fatalf("expected passthrough, got %d messages", len(result.Messages))
	}
}
