package chat

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ishalabs/isha-backend/internal/model/chat"
	"github.com/ishalabs/isha-backend/internal/workflow"
	"github.com/ishalabs/isha-backend/pkg/utils"
)

// Handler exposes the conversation-turn operation over HTTP.
type Handler struct {
	runner *workflow.Runner
}

// New creates the chat handler around the compiled workflow.
func New(runner *workflow.Runner) *Handler {
	return &Handler{runner: runner}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

type historyEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id"`
}

type chatRequest struct {
	Message             string         `json:"message"`
	UserName            string         `json:"user_name"`
	ConversationHistory []historyEntry `json:"conversation_history"`
	SessionID           string         `json:"session_id"`
}

type chatResponse struct {
	ResponseText string `json:"response_text"`
	MessageID    string `json:"message_id"`
	Timestamp    string `json:"timestamp"`
	UserName     string `json:"user_name"`
	Status       string `json:"status"`
}

// handleChat assembles a fresh turn state from the caller-supplied history,
// runs it through the workflow, and returns the newest assistant message.
// Request-shape problems are rejected here; the pipeline never sees them.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userMessage := strings.TrimSpace(payload.Message)
	if userMessage == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	userName := strings.TrimSpace(payload.UserName)
	if userName == "" {
		userName = "User"
	}

	state, err := assembleState(payload, userMessage, userName)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[chat] processing message from %s, history=%d", userName, len(payload.ConversationHistory))

	result, err := h.runner.Run(r.Context(), state)
	if err != nil {
		log.Printf("[chat] workflow run failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	reply, ok := result.LastAssistant()
	if !ok {
		// The processor appends one assistant message per user turn, so
		// this only fires if the pipeline contract is ever broken.
		reply = chat.NewAssistantMessage("I'm replying to your message, " + userName +
			". I'm having trouble processing your request right now, but I'm here to help!")
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		ResponseText: reply.Content,
		MessageID:    reply.MessageID,
		Timestamp:    reply.Timestamp,
		UserName:     userName,
		Status:       "success",
	})
}

// assembleState validates the caller-held history and appends the new user
// turn. History roles must belong to the closed enum.
func assembleState(payload chatRequest, userMessage, userName string) (*chat.TurnState, error) {
	messages := make([]chat.Message, 0, len(payload.ConversationHistory)+1)
	for _, entry := range payload.ConversationHistory {
		role := chat.Role(entry.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("invalid history role: %q", entry.Role)
		}
		messages = append(messages, chat.Message{
			Role:      role,
			Content:   entry.Content,
			Timestamp: entry.Timestamp,
			MessageID: entry.MessageID,
		})
	}
	messages = append(messages, chat.NewUserMessage(userMessage))

	sessionID := strings.TrimSpace(payload.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return &chat.TurnState{
		Messages: messages,
		UserName: userName,
		Context: map[string]any{
			"session_id": sessionID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
