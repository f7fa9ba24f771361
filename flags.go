// Command-line flag types for optional thresholds

package main

import (
	"math"
	"strconv"

	"github.com/spf13/pflag"
)

// thresholdFlag binds a pflag flag to a Threshold. The short and long
// forms of an option share one thresholdFlag, so giving the option twice
// with different values is reported as a conflict instead of silently
// keeping the last one
type thresholdFlag[T int | float64] struct {
	t     *Threshold[T]
	name  string
	parse func(string) (T, error)
}

func (f *thresholdFlag[T]) String() string {
	if f.t == nil || !f.t.Set {
		return ""
	}
	return f.t.String()
}

func (f *thresholdFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	if f.t.Set && f.t.Value != v {
		return argError("conflicting values for --%s: %v and %v", f.name, f.t.Value, v)
	}
	*f.t = Bound(v)
	return nil
}

func (f *thresholdFlag[T]) Type() string {
	var zero T
	if _, ok := any(zero).(float64); ok {
		return "float"
	}
	return "int"
}

func parseIntThreshold(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, argError("%q is not an integer", s)
	}
	return v, nil
}

func parseFloatThreshold(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, argError("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, argError("%q is not a finite number", s)
	}
	return v, nil
}

// intThresholdVarP defines an optional integer threshold flag with a shorthand
func intThresholdVarP(flags *pflag.FlagSet, t *Threshold[int], name, shorthand, usage string) {
	flags.VarP(&thresholdFlag[int]{t: t, name: name, parse: parseIntThreshold}, name, shorthand, usage)
}

// floatThresholdVarP defines an optional float threshold flag with a shorthand
func floatThresholdVarP(flags *pflag.FlagSet, t *Threshold[float64], name, shorthand, usage string) {
	flags.VarP(&thresholdFlag[float64]{t: t, name: name, parse: parseFloatThreshold}, name, shorthand, usage)
}
