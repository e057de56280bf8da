package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brme/internal/temporal"
	"brme/pkg/datemath"
	"brme/pkg/llmprovider"
)

var brt = datemath.MustParseOffset("-03:00")

const validJSON = `{"title":"Reunião com João","start":"2025-01-07T14:00:00-03:00","end":"2025-01-07T15:00:00-03:00","timezone":"America/Sao_Paulo","location":"","notes":""}`

type fakeGenerator struct {
	text string
	err  error
	req  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text}, nil
}

func reference() temporal.Reference {
	return temporal.Reference{
		Now:            time.Date(2025, time.January, 6, 10, 0, 0, 0, brt),
		TimezoneName:   "America/Sao_Paulo",
		TimezoneOffset: "-03:00",
	}
}

func TestParseDraft(t *testing.T) {
	want := temporal.DraftEvent{
		Title:    "Reunião com João",
		Start:    "2025-01-07T14:00:00-03:00",
		End:      "2025-01-07T15:00:00-03:00",
		Timezone: "America/Sao_Paulo",
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare object", raw: validJSON},
		{name: "fenced with language", raw: "```json\n" + validJSON + "\n```"},
		{name: "fenced without language", raw: "```\n" + validJSON + "\n```"},
		{name: "chatter around", raw: "Claro! Aqui está: " + validJSON + " Espero ter ajudado {"},
		{name: "broken brace before", raw: "{ nota: ok } " + validJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDraft(tt.raw, brt)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDraft_Scalars(t *testing.T) {
	got, err := ParseDraft(`{"title":"Aula","start":"2025-01-07T14:00:00-03:00","end":"2025-01-07T15:00:00-03:00","timezone":null,"location":12,"notes":null}`, brt)
	require.NoError(t, err)
	assert.Equal(t, "", got.Timezone)
	assert.Equal(t, "12", got.Location)
	assert.Equal(t, "", got.Notes)
}

func TestParseDraft_Errors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErrs  []error
		wantInMsg string
	}{
		{name: "no json", raw: "Não sei.", wantErrs: []error{temporal.ErrMalformedEstimatorOutput}},
		{name: "array only", raw: `["a"]`, wantErrs: []error{temporal.ErrMalformedEstimatorOutput}},
		{
			name:      "missing notes",
			raw:       `{"title":"x","start":"2025-01-07T14:00:00-03:00","end":"2025-01-07T15:00:00-03:00","timezone":"t","location":""}`,
			wantErrs:  []error{temporal.ErrMalformedEstimatorOutput},
			wantInMsg: `"notes"`,
		},
		{
			name:      "missing title",
			raw:       `{"start":"2025-01-07T14:00:00-03:00","end":"2025-01-07T15:00:00-03:00","timezone":"t","location":"","notes":""}`,
			wantErrs:  []error{temporal.ErrMalformedEstimatorOutput},
			wantInMsg: `"title"`,
		},
		{
			name:     "bad start",
			raw:      `{"title":"x","start":"amanhã às 14h","end":"2025-01-07T15:00:00-03:00","timezone":"t","location":"","notes":""}`,
			wantErrs: []error{temporal.ErrMalformedEstimatorOutput, temporal.ErrInvalidTimestamp},
		},
		{
			name:     "null end",
			raw:      `{"title":"x","start":"2025-01-07T14:00:00-03:00","end":null,"timezone":"t","location":"","notes":""}`,
			wantErrs: []error{temporal.ErrMalformedEstimatorOutput, temporal.ErrInvalidTimestamp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDraft(tt.raw, brt)
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			if tt.wantInMsg != "" {
				assert.Contains(t, err.Error(), tt.wantInMsg)
			}
			assert.Equal(t, temporal.DraftEvent{}, got)
		})
	}
}

func TestEstimate(t *testing.T) {
	gen := &fakeGenerator{text: validJSON}
	est := New(gen)

	draft, err := est.Estimate(context.Background(), "amanhã 14h reunião com João", reference())
	require.NoError(t, err)
	assert.Equal(t, "Reunião com João", draft.Title)

	require.NotNil(t, gen.req)
	assert.Equal(t, DefaultTemperature, gen.req.Temperature)
	assert.True(t, gen.req.JSONMode)
	assert.Equal(t, systemPrompt, gen.req.SystemInstruction)
	require.Len(t, gen.req.Messages, 1)
	prompt := gen.req.Messages[0].Text
	assert.Contains(t, prompt, "data_base_agora: 2025-01-06T10:00:00-03:00")
	assert.Contains(t, prompt, "Formato start/end: YYYY-MM-DDTHH:mm:00-03:00")
	assert.Contains(t, prompt, "timezone: America/Sao_Paulo")
	assert.Contains(t, prompt, `Texto: "amanhã 14h reunião com João"`)
}

func TestEstimate_GeneratorFailure(t *testing.T) {
	boom := errors.New("connection refused")
	est := New(&fakeGenerator{err: boom})

	_, err := est.Estimate(context.Background(), "hoje 18h", reference())
	assert.ErrorIs(t, err, temporal.ErrEstimatorUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestEstimate_WithEngine(t *testing.T) {
	// The model put the meeting on the wrong day; the explicit date wins.
	gen := &fakeGenerator{text: "```json\n" + validJSON + "\n```"}

	got, err := temporal.Resolve(context.Background(), "dia 20/02 14h reunião com João", temporal.Options{
		TimezoneName:   "America/Sao_Paulo",
		TimezoneOffset: "-03:00",
		BaseDate:       reference().Now,
		Estimator:      New(gen),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-20T14:00:00-03:00", got.Start)
	assert.Equal(t, "2025-02-20T15:00:00-03:00", got.End)
	assert.Equal(t, "Reunião com João", got.Title)
}
