package turn

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/ishalabs/isha-backend/internal/model/chat"
)

const defaultHistoryWindow = 5

// systemPromptTemplate carries the behavioral contract for spoken replies.
// Both placeholders are the user's display name.
const systemPromptTemplate = `You are Isha, a professional AI assistant. You are responding to a voice message from %s.

Key guidelines:
1. Keep responses conversational and natural for voice interaction
2. Be concise but informative - avoid overly long responses
3. Speak directly to the user in a warm, friendly tone
4. Provide clear, actionable answers
5. If the question is complex, break it down into simple points
6. Use natural speech patterns and avoid overly formal language
7. Keep responses under 150 words when possible for better voice experience
8. If you need to provide lists, use "first", "second", "third" instead of bullet points

Remember: Your response will be spoken aloud to the user, so make it sound natural and conversational.
Current conversation context: You are having a voice conversation with %s.`

// Builder derives the prompt turns handed to the completion client: one
// system instruction plus a bounded trailing window of the conversation.
type Builder struct {
	window int
}

// NewBuilder returns a Builder keeping the most recent window messages.
// Non-positive windows fall back to the default.
func NewBuilder(window int) *Builder {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &Builder{window: window}
}

// Build maps the state to prompt turns. The system instruction always comes
// first; messages outside the window are dropped, not summarized.
func (b *Builder) Build(state *chat.TurnState) []*schema.Message {
	prompt := make([]*schema.Message, 0, b.window+1)
	prompt = append(prompt, schema.SystemMessage(fmt.Sprintf(systemPromptTemplate, state.UserName, state.UserName)))

	startIdx := 0
	if len(state.Messages) > b.window {
		startIdx = len(state.Messages) - b.window
	}

	for _, msg := range state.Messages[startIdx:] {
		switch msg.Role {
		case chat.RoleUser:
			prompt = append(prompt, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			prompt = append(prompt, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return prompt
}
