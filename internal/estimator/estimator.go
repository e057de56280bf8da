// Package estimator selects and decorates the temporal.Estimator backends.
package estimator

import (
	"fmt"

	"brme/config"
	"brme/internal/estimator/llm"
	"brme/internal/estimator/rulebased"
	"brme/internal/temporal"
)

// New builds the estimator named by cfg.Estimator. gen is only required for the llm backend.
// A positive cfg.CacheTTL wraps the result in a Cached decorator.
func New(cfg config.ResolverConfig, gen llm.Generator) (temporal.Estimator, error) {
	var est temporal.Estimator
	switch cfg.Estimator {
	case config.EstimatorRule, "":
		est = rulebased.New()
	case config.EstimatorLLM:
		if gen == nil {
			return nil, fmt.Errorf("estimator %q requires an LLM generator", cfg.Estimator)
		}
		est = llm.New(gen)
	default:
		return nil, fmt.Errorf("unknown estimator: %s", cfg.Estimator)
	}

	if cfg.CacheTTL > 0 {
		est = NewCached(est, cfg.CacheTTL)
	}
	return est, nil
}
