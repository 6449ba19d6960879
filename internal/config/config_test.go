package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "MODEL_NAME", "ARK_API_KEY",
		"ARK_TEMPERATURE", "ARK_MAX_TOKENS", "MAX_CONVERSATION_HISTORY",
		"CHAT_ACK_PHRASES", "CHAT_ACK_PREFIX", "APP_VERSION"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":4000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.AI.Enabled() {
		t.Fatal("AI should be disabled without credentials")
	}
	if cfg.AI.Temperature == nil || *cfg.AI.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens == nil || *cfg.AI.MaxTokens != 1000 {
		t.Fatalf("unexpected max tokens: %v", cfg.AI.MaxTokens)
	}
	if cfg.Chat.HistoryWindow != 5 {
		t.Fatalf("unexpected history window: %d", cfg.Chat.HistoryWindow)
	}
	if len(cfg.Chat.AckPhrases) != 4 {
		t.Fatalf("unexpected ack phrases: %v", cfg.Chat.AckPhrases)
	}
}

func TestLoadBarePort(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
}

func TestLoadFullAddr(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
}

func TestAIConfigEnabled(t *testing.T) {
	t.Setenv("MODEL_NAME", "test-model")
	t.Setenv("ARK_API_KEY", "key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI config to be enabled")
	}
}

func TestAIConfigNeedsModel(t *testing.T) {
	t.Setenv("MODEL_NAME", "")
	t.Setenv("ARK_API_KEY", "key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("credentials without a model must stay disabled")
	}
}

func TestInvalidTemperatureRejected(t *testing.T) {
	t.Setenv("ARK_TEMPERATURE", "hot")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid ARK_TEMPERATURE")
	}
}

func TestHistoryWindowOverride(t *testing.T) {
	t.Setenv("MAX_CONVERSATION_HISTORY", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Chat.HistoryWindow != 12 {
		t.Fatalf("unexpected window: %d", cfg.Chat.HistoryWindow)
	}
}

func TestHistoryWindowMustBePositive(t *testing.T) {
	t.Setenv("MAX_CONVERSATION_HISTORY", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero history window")
	}
}

func TestAckPhrasesOverride(t *testing.T) {
	t.Setenv("CHAT_ACK_PHRASES", "acknowledging , re your note")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(cfg.Chat.AckPhrases) != 2 {
		t.Fatalf("unexpected phrases: %v", cfg.Chat.AckPhrases)
	}
	for _, phrase := range cfg.Chat.AckPhrases {
		if phrase != strings.TrimSpace(phrase) {
			t.Fatalf("phrase not trimmed: %q", phrase)
		}
	}
}
