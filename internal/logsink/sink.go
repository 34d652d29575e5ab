// Package logsink stores one flat row per exercise-plan submission. Sinks are
// append-only; nothing in this package reads records back.
package logsink

import (
	"context"
	"strconv"
	"strings"
)

// Record is the flattened submission written to a sink. Column order matches
// Row: Age, Weight, Height, BMI, Diabetes, Activity, Calorie_Target,
// HealthIssue.
type Record struct {
	Age           int
	Weight        float64
	Height        float64
	BMI           float64 // already rounded to 2 dp
	Diabetes      string
	Activity      string
	CalorieTarget int
	HealthIssue   string
}

// Sink appends records. Append errors are reported to the caller, which
// decides whether to surface them; the submission flow does not.
type Sink interface {
	Append(ctx context.Context, rec Record) error
	Close() error
}

// Row renders rec as text columns in log order.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.Age),
		formatFloat(r.Weight),
		formatFloat(r.Height),
		formatFloat(r.BMI),
		r.Diabetes,
		r.Activity,
		strconv.Itoa(r.CalorieTarget),
		r.HealthIssue,
	}
}

// formatFloat prints the shortest representation that round-trips, keeping a
// trailing ".0" on whole numbers so 70 kg is logged as 70.0 like the existing
// log files.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Nop discards every record.
type Nop struct{}

func (Nop) Append(context.Context, Record) error { return nil }
func (Nop) Close() error                         { return nil }

var _ Sink = Nop{}
