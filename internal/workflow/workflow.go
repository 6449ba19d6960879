package workflow

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/ishalabs/isha-backend/internal/model/chat"
	"github.com/ishalabs/isha-backend/internal/service/turn"
)

const turnNode = "process_turn"

// Runner executes the conversation pipeline as a compiled one-node graph:
// START -> process_turn -> END. The graph form is the extension point for
// future stages fanning out around the turn processor; today it invokes the
// processor exactly once and hands its output back unmodified.
type Runner struct {
	runnable compose.Runnable[*chat.TurnState, *chat.TurnState]
}

// New compiles the pipeline around the given processor.
func New(ctx context.Context, processor *turn.Processor) (*Runner, error) {
	graph := compose.NewGraph[*chat.TurnState, *chat.TurnState]()

	if err := graph.AddLambdaNode(turnNode, compose.InvokableLambda(processor.Process)); err != nil {
		return nil, fmt.Errorf("failed to add turn node: %w", err)
	}
	if err := graph.AddEdge(compose.START, turnNode); err != nil {
		return nil, fmt.Errorf("failed to add entry edge: %w", err)
	}
	if err := graph.AddEdge(turnNode, compose.END); err != nil {
		return nil, fmt.Errorf("failed to add terminal edge: %w", err)
	}

	runnable, err := graph.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile workflow graph: %w", err)
	}

	return &Runner{runnable: runnable}, nil
}

// Run pushes one turn state through the graph.
func (r *Runner) Run(ctx context.Context, state *chat.TurnState) (*chat.TurnState, error) {
	return r.runnable.Invoke(ctx, state)
}
