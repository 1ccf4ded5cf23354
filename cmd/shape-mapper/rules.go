package main

import (
	"errors"
	"fmt"
	"log/slog"

	"shape-mapper/internal/fieldpath"
	"shape-mapper/internal/mapping"
	"shape-mapper/internal/plan"
)

// loadPlan reads, validates and compiles a rule file.
func loadPlan(path string, log *slog.Logger) (*mapping.RuleFile, *plan.Plan, error) {
	if path == "" {
		return nil, nil, errRulesRequired
	}

	rf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	registry := mapping.DefaultRegistry()

	diags := mapping.Validate(rf, registry)
	for _, d := range diags.Warnings {
		log.Warn("rule file warning", slog.String("file", path), slog.String("diagnostic", d.String()))
	}

	if err := diags.Error(); err != nil {
		return nil, nil, fmt.Errorf("invalid rule file %s: %w", path, err)
	}

	cache, err := fieldpath.NewCache(fieldpath.DefaultCacheSize)
	if err != nil {
		return nil, nil, err
	}

	p, err := plan.FromFile(rf, registry, plan.WithCache(cache))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compile %s: %w", path, err)
	}

	log.Debug("plan compiled", slog.String("file", path), slog.Int("rules", p.Len()))

	return rf, p, nil
}

var errRulesRequired = errors.New("--rules is required")
