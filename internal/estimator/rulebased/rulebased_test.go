package rulebased

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/olebedev/when"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brme/internal/temporal"
	"brme/pkg/datemath"
)

type fakeParser struct {
	result *when.Result
	err    error
	base   time.Time
}

func (f *fakeParser) Parse(_ string, base time.Time) (*when.Result, error) {
	f.base = base
	return f.result, f.err
}

var brt = datemath.MustParseOffset("-03:00")

func reference() temporal.Reference {
	return temporal.Reference{
		Now:            time.Date(2025, time.January, 6, 13, 0, 30, 0, time.UTC),
		TimezoneName:   "America/Sao_Paulo",
		TimezoneOffset: "-03:00",
	}
}

func TestEstimate_UsesParserResult(t *testing.T) {
	parser := &fakeParser{result: &when.Result{
		Text: "amanhã 14h",
		Time: time.Date(2025, time.January, 7, 17, 0, 0, 0, time.UTC),
	}}
	est := NewWithParser(parser)

	draft, err := est.Estimate(context.Background(), "amanhã 14h reunião com João", reference())
	require.NoError(t, err)

	assert.Equal(t, temporal.DraftEvent{
		Title:    "reunião com João",
		Start:    "2025-01-07T14:00:00-03:00",
		End:      "2025-01-07T15:00:00-03:00",
		Timezone: "America/Sao_Paulo",
	}, draft)
	_, offset := parser.base.Zone()
	assert.Equal(t, -3*3600, offset)
}

func TestEstimate_ClockRange(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		result    *when.Result
		wantStart string
		wantEnd   string
		wantTitle string
	}{
		{
			name:      "hour range",
			text:      "reunião amanhã 14h-16h",
			result:    &when.Result{Text: "amanhã 14h", Time: time.Date(2025, time.January, 7, 17, 0, 0, 0, time.UTC)},
			wantStart: "2025-01-07T14:00:00-03:00",
			wantEnd:   "2025-01-07T16:00:00-03:00",
			wantTitle: "reunião",
		},
		{
			name:      "minute range",
			text:      "aula amanhã 14:30-16:00",
			result:    &when.Result{Text: "amanhã", Time: time.Date(2025, time.January, 7, 13, 0, 0, 0, time.UTC)},
			wantStart: "2025-01-07T14:30:00-03:00",
			wantEnd:   "2025-01-07T16:00:00-03:00",
			wantTitle: "aula",
		},
		{
			name:      "spelled range",
			text:      "plantão hoje 9h até 11h",
			wantStart: "2025-01-06T09:00:00-03:00",
			wantEnd:   "2025-01-06T11:00:00-03:00",
			wantTitle: "plantão",
		},
		{
			name:      "range past midnight",
			text:      "festa sábado 22h-2h",
			wantStart: "2025-01-06T22:00:00-03:00",
			wantEnd:   "2025-01-07T02:00:00-03:00",
			wantTitle: "festa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := NewWithParser(&fakeParser{result: tt.result}).Estimate(context.Background(), tt.text, reference())
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, draft.Start)
			assert.Equal(t, tt.wantEnd, draft.End)
			assert.Equal(t, tt.wantTitle, draft.Title)
		})
	}
}

func TestEstimate_AnchorsAtNowWhenOnlyCuesMatch(t *testing.T) {
	est := NewWithParser(&fakeParser{})

	draft, err := est.Estimate(context.Background(), "sexta 9h dentista", reference())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06T10:00:00-03:00", draft.Start)
	assert.Equal(t, "2025-01-06T11:00:00-03:00", draft.End)
	assert.Equal(t, "dentista", draft.Title)
}

func TestEstimate_NoCue(t *testing.T) {
	est := NewWithParser(&fakeParser{})

	_, err := est.Estimate(context.Background(), "comprar pão", reference())
	require.ErrorIs(t, err, temporal.ErrNoTemporalCueFound)
	assert.Contains(t, err.Error(), "brme hoje 18h academia")
}

func TestEstimate_ParserFailure(t *testing.T) {
	est := NewWithParser(&fakeParser{err: errors.New("rule panic")})

	_, err := est.Estimate(context.Background(), "hoje 18h", reference())
	assert.ErrorIs(t, err, temporal.ErrEstimatorUnavailable)
}

func TestEstimate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWithParser(&fakeParser{}).Estimate(ctx, "hoje 18h", reference())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimate_WithEngine(t *testing.T) {
	base := time.Date(2025, time.January, 6, 10, 0, 0, 0, brt)

	got, err := temporal.Resolve(context.Background(), "amanhã 14h reunião", temporal.Options{
		TimezoneName:   "America/Sao_Paulo",
		TimezoneOffset: "-03:00",
		BaseDate:       base,
		Estimator:      New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07T14:00:00-03:00", got.Start)
	assert.Equal(t, "2025-01-07T15:00:00-03:00", got.End)
	assert.Equal(t, "reunião", got.Title)
}

func TestEstimate_RangeWithEngine(t *testing.T) {
	base := time.Date(2025, time.January, 6, 10, 0, 0, 0, brt)

	got, err := temporal.Resolve(context.Background(), "reunião amanhã 14h-16h", temporal.Options{
		TimezoneName:   "America/Sao_Paulo",
		TimezoneOffset: "-03:00",
		BaseDate:       base,
		Estimator:      New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07T14:00:00-03:00", got.Start)
	assert.Equal(t, "2025-01-07T16:00:00-03:00", got.End)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		text    string
		matched string
		want    string
	}{
		{text: "hoje as 18h academia", want: "academia"},
		{text: "amanhã às 14:30 reunião com João", want: "reunião com João"},
		{text: "sexta-feira 20/02 dentista", want: "dentista"},
		{text: "hoje às 18h amanhã", want: temporal.DefaultTitle},
		{text: "jantar no sábado à noite", matched: "à noite", want: "jantar no"},
		{text: "casa da avó", want: "casa da avó"},
		{text: "dia 20/02 às 15h prova", want: "prova"},
		{text: "consulta 10h-11h", want: "consulta"},
		{text: "   ", want: temporal.DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.text, tt.matched))
		})
	}
}
