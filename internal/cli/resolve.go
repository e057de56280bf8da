package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"brme/config"
	"brme/internal/estimator"
	"brme/internal/temporal"
	"brme/pkg/datemath"
	"brme/pkg/ics"
)

type resolveOptions struct {
	base      string
	estimator string
	ics       bool
	explain   bool
}

func newResolveCommand(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <text...>",
		Short: "Resolve a sentence into an event and print it as JSON",
		Long: `Resolve runs the temporal engine on one sentence and prints the event.

Example:
  brme resolve amanhã 14h reunião com João
  brme resolve --base 2025-01-06T10:00:00-03:00 sexta 9:30 dentista
  brme resolve --ics hoje 18h academia > academia.ics`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.base, "base", "", "reference instant, RFC3339 (default: now)")
	cmd.Flags().StringVar(&opts.estimator, "estimator", "", "estimator backend: rule or llm (default: from config)")
	cmd.Flags().BoolVar(&opts.ics, "ics", false, "print an iCalendar document instead of JSON")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "include the normalized text and the rule that fired")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootOptions, opts *resolveOptions, text string) error {
	ctx := cmd.Context()

	cfg, logger, err := root.load()
	if err != nil {
		return err
	}
	if opts.estimator != "" {
		if opts.estimator != config.EstimatorRule && opts.estimator != config.EstimatorLLM {
			return fmt.Errorf("--estimator must be %q or %q", config.EstimatorRule, config.EstimatorLLM)
		}
		cfg.Resolver.Estimator = opts.estimator
	}

	base := time.Now()
	if opts.base != "" {
		if base, err = time.Parse(time.RFC3339, opts.base); err != nil {
			return fmt.Errorf("--base: %w", err)
		}
	}

	est, err := estimator.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	res, err := temporal.ResolveDetailed(ctx, text, temporal.Options{
		TimezoneName:   cfg.Resolver.TimezoneName,
		TimezoneOffset: cfg.Resolver.TimezoneOffset,
		BaseDate:       base,
		Estimator:      est,
	})
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "resolved %q via %s", res.Normalized, res.Rule)

	out := cmd.OutOrStdout()
	if opts.ics {
		doc, err := encodeICS(res.Event, base)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, doc)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if opts.explain {
		return enc.Encode(struct {
			temporal.ResolvedEvent
			Rule       temporal.Rule `json:"rule"`
			Normalized string        `json:"normalized"`
		}{res.Event, res.Rule, res.Normalized})
	}
	return enc.Encode(res.Event)
}

func encodeICS(ev temporal.ResolvedEvent, now time.Time) (string, error) {
	start, err := datemath.ParseTimestamp(ev.Start, time.UTC)
	if err != nil {
		return "", err
	}
	end, err := datemath.ParseTimestamp(ev.End, time.UTC)
	if err != nil {
		return "", err
	}
	return ics.Encode(now, ics.Event{
		Summary:     ev.Title,
		Description: ev.Notes,
		Location:    ev.Location,
		Start:       start,
		End:         end,
	})
}
