package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brme/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastSecret string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req telegram.SetWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			lastSecret = req.SecretToken
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req.URL == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			text := req["text"].(string)

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL) // Route commands to test server instead of api.telegram.org

	t.Run("SetWebhook Success", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastSecret != "s3cret" {
			t.Errorf("secret token not forwarded, got %q", lastSecret)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_500", "")
		if err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		err := bot.SendMessageWithMode(ctx, 12345, "Hello", "Markdown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_500")
		if err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Canceled Context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(canceled, 12345, "Hello"); err == nil {
			t.Fatalf("expected error on canceled context")
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		err := badBot.SendMessage(ctx, 12345, "fail")
		if err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
