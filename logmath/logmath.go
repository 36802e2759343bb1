// Package logmath converts between linear probabilities and fixed-point
// integers in a log domain with a configurable base. Storing log values
// as integers in a base close to 1 keeps enough resolution for language
// model scores while allowing compact quantized storage.
package logmath

import (
	"fmt"
	"math"
)

// DefaultBase is the log base used when none is configured. A base this
// close to 1 gives roughly 1e-4 nats of resolution per integer step.
const DefaultBase = 1.0001

// MinLog is the fixed-point value standing in for log(0).
const MinLog = math.MinInt32 / 2

// LogMath converts probabilities to and from fixed-point log values.
type LogMath struct {
	base    float64
	logBase float64 // natural log of base
}

// New returns a LogMath instance for the given base. The base must be
// greater than 1.
func New(base float64) (*LogMath, error) {
	if base <= 1.0 {
		return nil, fmt.Errorf("logmath: base must be > 1, got %v", base)
	}
	return &LogMath{base: base, logBase: math.Log(base)}, nil
}

// Default returns a LogMath instance with DefaultBase.
func Default() *LogMath {
	lm, _ := New(DefaultBase)
	return lm
}

// Base returns the log base.
func (lm *LogMath) Base() float64 {
	return lm.base
}

// Log converts a linear probability to a fixed-point log value.
// Non-positive probabilities map to MinLog.
func (lm *LogMath) Log(p float64) int32 {
	if p <= 0 {
		return MinLog
	}
	return int32(math.Round(math.Log(p) / lm.logBase))
}

// Exp converts a fixed-point log value back to a linear probability.
func (lm *LogMath) Exp(lp int32) float64 {
	return math.Exp(float64(lp) * lm.logBase)
}

// Log10ToLog converts a base-10 log value, as found in ARPA model files,
// to a fixed-point log value.
func (lm *LogMath) Log10ToLog(lp10 float64) int32 {
	return int32(math.Round(lp10 * math.Ln10 / lm.logBase))
}

// LogToLog10 converts a fixed-point log value to a base-10 log value.
func (lm *LogMath) LogToLog10(lp int32) float64 {
	return float64(lp) * lm.logBase / math.Ln10
}
