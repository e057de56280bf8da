package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brme/pkg/ollama"
)

func TestChat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req ollama.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[len(req.Messages)-1].Content == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`model not loaded`))
			return
		}

		json.NewEncoder(w).Encode(ollama.ChatResponse{
			Model:     req.Model,
			Message:   ollama.Message{Role: "assistant", Content: `{"title":"Academia"}`},
			Done:      true,
			EvalCount: 7,
		})
	}))
	defer ts.Close()

	client, err := ollama.New(ollama.Config{Host: ts.URL, Model: "llama-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.Chat(context.Background(), &ollama.ChatRequest{
			Messages: []ollama.Message{{Role: "user", Content: "hoje 18h academia"}},
			Stream:   true,
			Options:  &ollama.Options{Temperature: 0.1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Model != "llama-test" {
			t.Errorf("expected default model to be filled, got %q", resp.Model)
		}
		if resp.Message.Content != `{"title":"Academia"}` {
			t.Errorf("unexpected content: %s", resp.Message.Content)
		}
	})

	t.Run("HTTP Error Flow", func(t *testing.T) {
		_, err := client.Chat(context.Background(), &ollama.ChatRequest{
			Messages: []ollama.Message{{Role: "user", Content: "fail"}},
		})
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
	})
}

func TestNew_Defaults(t *testing.T) {
	client, err := ollama.New(ollama.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != ollama.DefaultModel {
		t.Errorf("Model() = %s", client.Model())
	}
}
