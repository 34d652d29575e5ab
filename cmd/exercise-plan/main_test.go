package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() options {
	return options{
		Age:      30,
		WeightKG: 70,
		HeightCM: 175,
		Diabetes: "diabetic",
		Activity: "light",
	}
}

func TestRun_PrintsPlan(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, validOptions()))

	s := out.String()
	assert.Contains(t, s, "Your BMI: 22.86")
	assert.Contains(t, s, "Normal BMI → Maintain fitness with balanced routine.")
	assert.Contains(t, s, "15-minute walk after meals")
	assert.Contains(t, s, "approximately 2045 calories per day")
	assert.NotContains(t, s, "10. Yoga")
}

func TestRun_AppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "exercise_logs.csv")
	opts := validOptions()
	opts.LogPath = path
	opts.HealthIssue = "Knee pain"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, opts))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "30,70.0,175.0,22.86,Yes (Diabetic),Light (1-2 days/week),2045,Knee pain\n", string(b))
}

func TestRun_RejectsOutOfRange(t *testing.T) {
	opts := validOptions()
	opts.Age = 120

	var out bytes.Buffer
	assert.Error(t, run(context.Background(), &out, opts))
	assert.Contains(t, out.String(), "Invalid input")
	assert.NotContains(t, out.String(), "Your BMI")
}

func TestRun_AcceptsLongHealthIssue(t *testing.T) {
	opts := validOptions()
	opts.HealthIssue = strings.Repeat("knee ", 200)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, opts))
	assert.Contains(t, out.String(), "Avoid stress due to: knee knee")
}

func TestRun_RejectsUnknownDiabetes(t *testing.T) {
	opts := validOptions()
	opts.Diabetes = "maybe"

	var out bytes.Buffer
	assert.Error(t, run(context.Background(), &out, opts))
}

// TestRootCmd_Flags drives the command through cobra's flag parsing.
func TestRootCmd_Flags(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--age", "40", "--weight", "45", "--height", "170", "--diabetes", "non_diabetic", "--info"})
	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Your BMI: 15.57")
	assert.Contains(t, s, "Underweight")
	assert.Contains(t, s, "approximately 2380 calories per day")
	assert.Contains(t, s, "1. Walking")
	assert.Contains(t, s, "10. Yoga")
}
