package telegram

import (
	"context"
	"crypto/hmac"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"brme/internal/event"
	"brme/internal/model"
	pkgResponse "brme/pkg/response"
	pkgTelegram "brme/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds immediately and processes the message in a background goroutine,
// since an LLM estimator plus the calendar insert can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.SecretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if !hmac.Equal([]byte(got), []byte(h.cfg.SecretToken)) {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		procCtx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()
		if err := h.processMessage(procCtx, msg); err != nil {
			h.l.Errorf(procCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message. Only errors talking to Telegram are returned;
// resolution failures are reported to the chat.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	switch strings.ToLower(text) {
	case "/start", "/help":
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	}

	payload, ok := stripPrefix(text, h.cfg.CommandPrefix)
	if !ok {
		return nil
	}
	if payload == "" {
		return h.bot.SendMessage(ctx, chatID, msgEmptyPayload)
	}

	if !h.limiter.Allow(chatID) {
		h.l.Warnf(ctx, "telegram handler: chat %d rate limited", chatID)
		return h.bot.SendMessage(ctx, chatID, msgRateLimited)
	}

	sc := scopeOf(msg)
	h.l.Info(ctx, "telegram command received",
		"chat_id", chatID,
		"chat_type", msg.Chat.Type,
		"user_id", sc.UserID,
		"payload", payload,
	)

	reply, err := h.handlePayload(ctx, sc, payload)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: chat %d: %v", chatID, err)
		reply = failureReply(err)
	}
	return h.bot.SendMessage(ctx, chatID, reply)
}

func (h *handler) handlePayload(ctx context.Context, sc model.Scope, payload string) (string, error) {
	if !h.cfg.CreateEvents {
		out, err := h.uc.Resolve(ctx, sc, event.ResolveInput{Text: payload})
		if err != nil {
			return "", err
		}
		return resolvedReply(out), nil
	}

	out, err := h.uc.Create(ctx, sc, event.CreateInput{Text: payload})
	if err != nil {
		return "", err
	}
	return createdReply(out), nil
}

// stripPrefix matches prefix case-insensitively as a whole word at the start of text.
func stripPrefix(text, prefix string) (string, bool) {
	if len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
		return "", false
	}
	rest := text[len(prefix):]
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{
		UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID),
		Source: model.SourceTelegram,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}
