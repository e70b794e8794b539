// Package accuracy measures the packet math kernels against float64
// references from the standard library. A Sweep names a function and an
// input range; Run evaluates the kernel over the range and returns a Report
// with the worst absolute and ULP errors.
package accuracy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Function names accepted in Sweep.Func.
const (
	FuncSin     = "sin"
	FuncLog     = "log"
	FuncExp     = "exp"
	FuncSqrt    = "sqrt"
	FuncRSqrt   = "rsqrt"
	FuncSqrt64  = "sqrt64"
	FuncRSqrt64 = "rsqrt64"
)

// DefaultSteps is used when a sweep leaves Steps unset.
const DefaultSteps = 100001

var (
	// ErrUnknownFunc is returned for a Sweep.Func that names no kernel.
	ErrUnknownFunc = errors.New("unknown function")

	// ErrInvalidSweep is returned for an empty or malformed input range.
	ErrInvalidSweep = errors.New("invalid sweep")
)

// Sweep is one accuracy measurement: Steps points from Lo to Hi, spaced
// linearly or, with Log set, evenly in log2.
//
// A zero MaxULP or MaxAbs means that bound is not checked.
type Sweep struct {
	Func   string  `yaml:"func"`
	Lo     float64 `yaml:"lo"`
	Hi     float64 `yaml:"hi"`
	Steps  int     `yaml:"steps"`
	Log    bool    `yaml:"log"`
	MaxULP uint64  `yaml:"max_ulp"`
	MaxAbs float64 `yaml:"max_abs"`
}

// Config is the top level of a sweep file:
//
//	sweeps:
//	  - func: exp
//	    lo: -87
//	    hi: 88
//	    max_ulp: 16
//	  - func: sqrt
//	    lo: 1e-30
//	    hi: 1e30
//	    log: true
//	    max_ulp: 8
type Config struct {
	Sweeps []Sweep `yaml:"sweeps"`
}

// DefaultSweeps covers every kernel over the ranges its documented error
// bound applies to.
func DefaultSweeps() []Sweep {
	return []Sweep{
		{Func: FuncSin, Lo: -100, Hi: 100, Steps: 200001, MaxAbs: 2e-6},
		{Func: FuncLog, Lo: 1.2e-38, Hi: 3.4e38, Steps: DefaultSteps, Log: true, MaxAbs: 2e-5},
		{Func: FuncLog, Lo: 0.5, Hi: 2, Steps: DefaultSteps, MaxAbs: 1e-6},
		{Func: FuncExp, Lo: -87, Hi: 88, Steps: DefaultSteps, MaxULP: 16},
		{Func: FuncSqrt, Lo: 1e-30, Hi: 1e30, Steps: DefaultSteps, Log: true, MaxULP: 8},
		{Func: FuncRSqrt, Lo: 1e-30, Hi: 1e30, Steps: DefaultSteps, Log: true, MaxULP: 8},
		{Func: FuncSqrt64, Lo: 1e-300, Hi: 1e300, Steps: DefaultSteps, Log: true, MaxULP: 1},
		{Func: FuncRSqrt64, Lo: 1e-300, Hi: 1e300, Steps: DefaultSteps, Log: true, MaxULP: 1},
	}
}

// LoadConfig reads a sweep file from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read sweep config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a sweep file. Unknown keys are rejected, unset Steps
// take DefaultSteps and an empty file yields DefaultSweeps.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse sweep config: %w", err)
	}

	if len(cfg.Sweeps) == 0 {
		cfg.Sweeps = DefaultSweeps()
		return cfg, nil
	}
	for i := range cfg.Sweeps {
		s := &cfg.Sweeps[i]
		if s.Steps == 0 {
			s.Steps = DefaultSteps
		}
		if err := s.Validate(); err != nil {
			return Config{}, fmt.Errorf("sweep %d: %w", i, err)
		}
	}
	return cfg, nil
}

// Validate reports whether s names a known function over a usable range.
func (s Sweep) Validate() error {
	if _, ok := lookup(s.Func); !ok {
		return fmt.Errorf("%w %q", ErrUnknownFunc, s.Func)
	}
	switch {
	case s.Steps < 2:
		return fmt.Errorf("%w: %s needs at least 2 steps, got %d", ErrInvalidSweep, s.Func, s.Steps)
	case !(s.Lo < s.Hi):
		return fmt.Errorf("%w: %s range [%g, %g] is empty", ErrInvalidSweep, s.Func, s.Lo, s.Hi)
	case s.Log && s.Lo <= 0:
		return fmt.Errorf("%w: %s log spacing needs lo > 0, got %g", ErrInvalidSweep, s.Func, s.Lo)
	}
	return nil
}

// String identifies the sweep in reports and log lines.
func (s Sweep) String() string {
	spacing := "lin"
	if s.Log {
		spacing = "log"
	}
	return fmt.Sprintf("%s[%g, %g]/%s", s.Func, s.Lo, s.Hi, spacing)
}
