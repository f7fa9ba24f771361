// Read filters: optional thresholds combined with AND

package main

import (
	"fmt"
	"strings"
)

// Threshold is an optional numeric bound. A threshold that is not Set
// never rejects a read
type Threshold[T int | float64] struct {
	Value T
	Set   bool
}

// Bound returns a Threshold that is set to v
func Bound[T int | float64](v T) Threshold[T] {
	return Threshold[T]{Value: v, Set: true}
}

func (t Threshold[T]) String() string {
	if !t.Set {
		return "none"
	}
	return fmt.Sprint(t.Value)
}

// FilterConfig holds the read filters for one run. It is built once from
// the command line and is not modified while reads are being filtered
type FilterConfig struct {
	MinLength  Threshold[int]
	MaxLength  Threshold[int]
	MinMeanQ   Threshold[float64]
	MinWindowQ Threshold[float64]
	WindowSize int
}

// NeedsWindow reports whether the window quality has to be computed
func (cfg FilterConfig) NeedsWindow() bool {
	return cfg.MinWindowQ.Set
}

// Check tests a read's metrics against all configured thresholds. All bounds
// are inclusive. If the read fails, the name of the first failing filter is returned
func (cfg FilterConfig) Check(m Metrics) (bool, string) {
	if cfg.MinLength.Set && m.Length < cfg.MinLength.Value {
		return false, "min_length"
	}
	if cfg.MaxLength.Set && m.Length > cfg.MaxLength.Value {
		return false, "max_length"
	}
	if cfg.MinMeanQ.Set && m.MeanQuality < cfg.MinMeanQ.Value {
		return false, "min_mean_q"
	}
	if cfg.MinWindowQ.Set && m.WindowQuality < cfg.MinWindowQ.Value {
		return false, "min_window_q"
	}
	return true, ""
}

// Validate checks threshold values that parse correctly but can't be used
func (cfg FilterConfig) Validate() error {
	if cfg.MinLength.Set && cfg.MinLength.Value < 0 {
		return argError("--min_length must not be negative (got %d)", cfg.MinLength.Value)
	}
	if cfg.MaxLength.Set && cfg.MaxLength.Value < 0 {
		return argError("--max_length must not be negative (got %d)", cfg.MaxLength.Value)
	}
	if cfg.MinLength.Set && cfg.MaxLength.Set && cfg.MinLength.Value > cfg.MaxLength.Value {
		return argError("--min_length (%d) is greater than --max_length (%d)",
			cfg.MinLength.Value, cfg.MaxLength.Value)
	}
	if cfg.MinMeanQ.Set && cfg.MinMeanQ.Value < 0 {
		return argError("--min_mean_q must not be negative (got %g)", cfg.MinMeanQ.Value)
	}
	if cfg.MinWindowQ.Set && cfg.MinWindowQ.Value < 0 {
		return argError("--min_window_q must not be negative (got %g)", cfg.MinWindowQ.Value)
	}
	if cfg.WindowSize <= 0 {
		return argError("--window_size must be positive (got %d)", cfg.WindowSize)
	}
	return nil
}

// Describe lists the active filters, e.g. "min_length=75 max_length=120"
func (cfg FilterConfig) Describe() string {
	var parts []string
	if cfg.MinLength.Set {
		parts = append(parts, "min_length="+cfg.MinLength.String())
	}
	if cfg.MaxLength.Set {
		parts = append(parts, "max_length="+cfg.MaxLength.String())
	}
	if cfg.MinMeanQ.Set {
		parts = append(parts, "min_mean_q="+cfg.MinMeanQ.String())
	}
	if cfg.MinWindowQ.Set {
		parts = append(parts, fmt.Sprintf("min_window_q=%s window_size=%d", cfg.MinWindowQ, cfg.WindowSize))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
