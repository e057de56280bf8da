package estimator

import (
	"context"
	"fmt"

	"brme/config"
	"brme/internal/estimator/llm"
	"brme/internal/temporal"
	"brme/pkg/llmprovider"
	"brme/pkg/log"
)

// Build wires the configured estimator, initializing the LLM provider chain only
// when the llm backend is selected.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (temporal.Estimator, error) {
	var gen llm.Generator
	if cfg.Resolver.Estimator == config.EstimatorLLM {
		providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
		if err != nil {
			return nil, fmt.Errorf("initialize LLM providers: %w", err)
		}
		for _, p := range providers {
			l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
		gen = llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)
	}

	return New(cfg.Resolver, gen)
}
