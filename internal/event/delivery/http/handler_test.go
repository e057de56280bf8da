package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brme/internal/event"
	"brme/internal/model"
	"brme/internal/temporal"
	pkgLog "brme/pkg/log"
	"brme/pkg/response"
)

type mockUseCase struct {
	resolveIn  event.ResolveInput
	createIn   event.CreateInput
	scope      model.Scope
	resolveOut event.ResolveOutput
	createOut  event.CreateOutput
	err        error
}

func (m *mockUseCase) Resolve(_ context.Context, sc model.Scope, in event.ResolveInput) (event.ResolveOutput, error) {
	m.scope, m.resolveIn = sc, in
	return m.resolveOut, m.err
}

func (m *mockUseCase) Create(_ context.Context, sc model.Scope, in event.CreateInput) (event.CreateOutput, error) {
	m.scope, m.createIn = sc, in
	return m.createOut, m.err
}

var resolvedEvent = temporal.ResolvedEvent{
	Title:    "reunião",
	Start:    "2025-01-07T14:00:00-03:00",
	End:      "2025-01-07T15:00:00-03:00",
	Timezone: "America/Sao_Paulo",
}

type recordingLogger struct {
	pkgLog.Logger
	lines []string
}

func (l *recordingLogger) Errorf(_ context.Context, template string, arg ...any) {
	l.lines = append(l.lines, fmt.Sprintf(template, arg...))
}

func newRouter(uc event.UseCase) *gin.Engine {
	return newRouterWithLogger(uc, pkgLog.NewNop())
}

func newRouterWithLogger(uc event.UseCase, l pkgLog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, map[string]any) {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

func TestResolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{resolveOut: event.ResolveOutput{Event: resolvedEvent, Rule: temporal.RuleRelativeDay, Normalized: "amanhã 14h reunião"}}
		r := newRouter(uc)

		w := post(r, "/api/v1/events/resolve", `{"text":"amanhã 14h reunião","base_date":"2025-01-06T10:00:00-03:00"}`)
		require.Equal(t, http.StatusOK, w.Code)

		resp, data := decode(t, w)
		assert.Equal(t, 0, resp.ErrorCode)
		assert.Equal(t, "reunião", data["title"])
		assert.Equal(t, "2025-01-07T14:00:00-03:00", data["start"])
		assert.Equal(t, "America/Sao_Paulo", data["timezone"])
		assert.Equal(t, "relative_day", data["rule"])

		assert.Equal(t, "amanhã 14h reunião", uc.resolveIn.Text)
		assert.True(t, uc.resolveIn.BaseDate.Equal(time.Date(2025, 1, 6, 13, 0, 0, 0, time.UTC)))
		assert.Equal(t, model.SourceHTTP, uc.scope.Source)
	})

	t.Run("ics format", func(t *testing.T) {
		uc := &mockUseCase{resolveOut: event.ResolveOutput{Event: resolvedEvent}}
		r := newRouter(uc)

		w := post(r, "/api/v1/events/resolve?format=ics", `{"text":"amanhã 14h reunião"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
		assert.Contains(t, w.Body.String(), "BEGIN:VEVENT")
		assert.Contains(t, w.Body.String(), "SUMMARY:reunião")
		assert.Contains(t, w.Body.String(), "DTSTART:20250107T170000Z")
	})

	t.Run("validation", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		for _, body := range []string{`{}`, `{"text":"   "}`, `{"text":"x","base_date":"amanhã"}`, `not json`} {
			w := post(r, "/api/v1/events/resolve", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}

		w := post(r, "/api/v1/events/resolve?format=pdf", `{"text":"amanhã 14h"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			err  error
			code int
			msg  string
		}{
			{temporal.ErrNoTemporalCueFound, http.StatusBadRequest, temporal.HintNoCue},
			{errors.Join(temporal.ErrMalformedEstimatorOutput, errors.New("no json")), http.StatusBadRequest, ""},
			{errors.Join(temporal.ErrEstimatorUnavailable, errors.New("timeout")), http.StatusBadGateway, ""},
			{errors.New("boom"), http.StatusInternalServerError, response.DefaultErrorMessage},
		}
		for _, tt := range tests {
			r := newRouter(&mockUseCase{err: tt.err})
			w := post(r, "/api/v1/events/resolve", `{"text":"algo"}`)
			assert.Equal(t, tt.code, w.Code, tt.err.Error())
			if tt.msg != "" {
				resp, _ := decode(t, w)
				assert.Equal(t, tt.msg, resp.Message)
			}
		}
	})

	t.Run("resolver misconfiguration", func(t *testing.T) {
		for _, err := range []error{
			fmt.Errorf("%w: bad", temporal.ErrInvalidOffset),
			temporal.ErrMissingBaseDate,
			temporal.ErrNoEstimator,
		} {
			l := &recordingLogger{Logger: pkgLog.NewNop()}
			r := newRouterWithLogger(&mockUseCase{err: err}, l)

			w := post(r, "/api/v1/events/resolve", `{"text":"algo"}`)
			assert.Equal(t, http.StatusInternalServerError, w.Code, err.Error())
			resp, _ := decode(t, w)
			assert.Equal(t, response.DefaultErrorMessage, resp.Message)
			require.Len(t, l.lines, 1)
			assert.Contains(t, l.lines[0], "resolver misconfigured")
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{createOut: event.CreateOutput{
			Event:    resolvedEvent,
			Rule:     temporal.RuleRelativeDay,
			Calendar: model.CalendarEvent{ID: "evt-1", CalendarID: "team", HTMLLink: "https://calendar.google.com/e/1"},
		}}
		r := newRouter(uc)

		w := post(r, "/api/v1/events", `{"text":"amanhã 14h reunião","calendar_id":"team"}`)
		require.Equal(t, http.StatusOK, w.Code)

		_, data := decode(t, w)
		assert.Equal(t, "reunião", data["title"])
		cal, _ := data["calendar"].(map[string]any)
		assert.Equal(t, "evt-1", cal["id"])
		assert.Equal(t, "https://calendar.google.com/e/1", cal["html_link"])

		assert.Equal(t, "team", uc.createIn.CalendarID)
		assert.True(t, uc.createIn.BaseDate.IsZero())
	})

	t.Run("calendar errors", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: event.ErrCalendarNotConfigured})
		w := post(r, "/api/v1/events", `{"text":"amanhã 14h reunião"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		r = newRouter(&mockUseCase{err: errors.Join(event.ErrCalendarUnavailable, errors.New("403"))})
		w = post(r, "/api/v1/events", `{"text":"amanhã 14h reunião"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
