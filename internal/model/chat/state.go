package chat

// TurnState carries one request's conversation through the pipeline. It is
// built fresh per request and discarded after the response is extracted;
// nothing here outlives the call.
type TurnState struct {
	Messages []Message      `json:"messages"`
	UserName string         `json:"user_name"`
	Context  map[string]any `json:"context"`
}

// WithMessage returns a copy of the state with msg appended. The receiver's
// message slice is never written through, so concurrent readers of the
// original state stay safe.
func (s *TurnState) WithMessage(msg Message) *TurnState {
	messages := make([]Message, 0, len(s.Messages)+1)
	messages = append(messages, s.Messages...)
	messages = append(messages, msg)

	return &TurnState{
		Messages: messages,
		UserName: s.UserName,
		Context:  s.Context,
	}
}

// LastAssistant returns the newest assistant message, scanning from the
// tail, or false when none exists.
func (s *TurnState) LastAssistant() (Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i], true
		}
	}
	return Message{}, false
}
