package turn

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/ishalabs/isha-backend/internal/config"
	"github.com/ishalabs/isha-backend/internal/model/chat"
)

// Completer is the one call the processor needs from the completion client.
// A nil Completer means the backing service was never configured and every
// turn runs in degraded mode.
type Completer interface {
	Generate(ctx context.Context, prompt []*schema.Message) (string, error)
}

// Processor produces exactly one assistant message per user turn. It holds
// no cross-invocation state; the injected dependencies are read-only.
type Processor struct {
	completer Completer
	builder   *Builder
	cfg       config.ChatConfig
}

// NewProcessor wires the processor with its completion client (nil for
// degraded mode) and pipeline configuration.
func NewProcessor(completer Completer, cfg config.ChatConfig) *Processor {
	return &Processor{
		completer: completer,
		builder:   NewBuilder(cfg.HistoryWindow),
		cfg:       cfg,
	}
}

// Process runs one conversation turn. If the last message is not a user
// turn the state passes through untouched; otherwise a single assistant
// message is appended, whether generation succeeded, degraded, or faulted.
// Process never returns a non-nil error: faults become an apologetic
// assistant message flagged as an error.
func (p *Processor) Process(ctx context.Context, state *chat.TurnState) (result *chat.TurnState, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[turn] recovered from fault while processing turn: %v", r)
			result = state.WithMessage(chat.NewErrorMessage(apologyReply(state.UserName)))
			err = nil
		}
	}()

	if len(state.Messages) == 0 {
		log.Printf("[turn] no messages in state, nothing to process")
		return state, nil
	}

	last := state.Messages[len(state.Messages)-1]
	if last.Role != chat.RoleUser {
		log.Printf("[turn] last message is %s, not user, skipping", last.Role)
		return state, nil
	}

	reply := p.respond(ctx, state, last.Content)
	return state.WithMessage(chat.NewAssistantMessage(reply)), nil
}

// respond picks the generated reply when the client is reachable and the
// templated demo reply otherwise. A failed call is a soft degradation, not
// an error surfaced to the caller.
func (p *Processor) respond(ctx context.Context, state *chat.TurnState, userInput string) string {
	if p.completer != nil {
		generated, err := p.completer.Generate(ctx, p.builder.Build(state))
		if err == nil {
			return p.acknowledged(generated)
		}
		log.Printf("[turn] completion failed, degrading to demo reply: %v", err)
	}

	return demoReply(state.UserName, userInput)
}

// acknowledged enforces the contract that every successful reply references
// the user's turn: when none of the configured phrases occur, the canonical
// prefix is prepended.
func (p *Processor) acknowledged(reply string) string {
	lower := strings.ToLower(reply)
	for _, phrase := range p.cfg.AckPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return reply
		}
	}
	return p.cfg.AckPrefix + reply
}

func demoReply(userName, userInput string) string {
	return fmt.Sprintf("Hi %s! I heard you say '%s'. I'm Isha, your AI assistant. "+
		"I'm currently running in demo mode and need my language model to be configured for full functionality. "+
		"But I'm still here to help you with whatever you need!", userName, userInput)
}

func apologyReply(userName string) string {
	return fmt.Sprintf("Hi %s! I encountered a technical issue while processing your request, "+
		"but don't worry - I'm still here to help! Please try asking your question again.", userName)
}
