// CLI tool to compute a personalized exercise and calorie plan without the web UI.
// Optionally appends the submission to the same CSV log the server writes.
// Usage: go run ./cmd/exercise-plan --age 30 --weight 70 --height 175 [--diabetes diabetic] [--log data/exercise_logs.csv]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lg/exercise-guidance-go-api/internal/content"
	"lg/exercise-guidance-go-api/internal/logsink"
	"lg/exercise-guidance-go-api/internal/plan"
	"lg/exercise-guidance-go-api/internal/service"
)

// options are the command's flags. The validate ranges match the web form.
type options struct {
	Age         int     `validate:"min=5,max=100"`
	WeightKG    float64 `validate:"min=10,max=250"`
	HeightCM    float64 `validate:"min=50,max=250"`
	Diabetes    string  `validate:"oneof=unknown diabetic non_diabetic"`
	Activity    string  `validate:"oneof=sedentary light moderate heavy"`
	HealthIssue string
	LogPath     string
	Info        bool
	Verbose     bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#748c08"))
	bmiStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d5b1a"))
	headerStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	tipStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#16406b"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8a1c16"))
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := options{
		Age:      plan.MinAge,
		WeightKG: plan.MinWeightKG,
		HeightCM: plan.MinHeightCM,
		Diabetes: string(plan.DiabetesUnknown),
		Activity: string(plan.ActivitySedentary),
	}

	cmd := &cobra.Command{
		Use:          "exercise-plan",
		Short:        "Personalized exercise & calorie plan from BMI",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Age, "age", opts.Age, "age in years (5-100)")
	f.Float64Var(&opts.WeightKG, "weight", opts.WeightKG, "weight in kg (10-250)")
	f.Float64Var(&opts.HeightCM, "height", opts.HeightCM, "height in cm (50-250)")
	f.StringVar(&opts.Diabetes, "diabetes", opts.Diabetes, "unknown, diabetic or non_diabetic")
	f.StringVar(&opts.Activity, "activity", opts.Activity, "sedentary, light, moderate or heavy")
	f.StringVar(&opts.HealthIssue, "health-issue", "", "optional health issue, e.g. \"Back pain\"")
	f.StringVar(&opts.LogPath, "log", "", "append the submission to this CSV file")
	f.BoolVar(&opts.Info, "info", false, "also print the top 10 exercises for diabetes")
	f.BoolVar(&opts.Verbose, "verbose", false, "log sink warnings to stderr")
	return cmd
}

// run validates opts, computes the plan and writes it to out.
func run(ctx context.Context, out io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validator.New().Struct(opts); err != nil {
		fmt.Fprintln(out, errStyle.Render("Invalid input: "+err.Error()))
		return err
	}

	logger := zap.NewNop().Sugar()
	if opts.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer l.Sync()
		logger = l.Sugar()
	}

	var sink logsink.Sink = logsink.Nop{}
	if opts.LogPath != "" {
		csvSink, err := logsink.NewCSVSink(opts.LogPath)
		if err != nil {
			logger.Warnf("log disabled: %v", err)
		} else {
			sink = csvSink
		}
	}
	defer sink.Close()

	page, err := content.Load()
	if err != nil {
		return err
	}

	planner := service.NewPlanner(sink, logger)
	res, err := planner.Submit(ctx, plan.UserInput{
		Age:         opts.Age,
		WeightKG:    opts.WeightKG,
		HeightCM:    opts.HeightCM,
		Diabetes:    plan.DiabetesStatus(opts.Diabetes),
		Activity:    plan.ActivityLevel(opts.Activity),
		HealthIssue: opts.HealthIssue,
	})
	if err != nil {
		fmt.Fprintln(out, errStyle.Render("Enter valid weight & height!"))
		return err
	}

	fmt.Fprint(out, renderPlan(res, page))
	if opts.Info {
		fmt.Fprint(out, renderInfo(page))
	}
	return nil
}

func renderPlan(res plan.Result, page content.Page) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(page.Heading))
	fmt.Fprintln(&b, bmiStyle.Render(fmt.Sprintf("Your BMI: %.2f", res.BMI)))

	fmt.Fprintln(&b, headerStyle.Render("🎯 Personalized Workout Plan"))
	fmt.Fprintln(&b, res.Plan)
	for _, e := range res.Exercises {
		fmt.Fprintln(&b, "✔", e)
	}

	fmt.Fprintln(&b, headerStyle.Render("🔥 Recommended Daily Calorie Intake"))
	fmt.Fprintf(&b, "➡ You should consume approximately %d calories per day.\n", res.CalorieTarget)
	fmt.Fprintln(&b, tipStyle.Render(page.MealTip))
	return b.String()
}

func renderInfo(page content.Page) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(page.SectionsTitle))
	for _, s := range page.Sections {
		fmt.Fprintln(&b, lipgloss.NewStyle().Bold(true).Render(s.Title))
		fmt.Fprintln(&b, "  "+s.Description)
	}
	return b.String()
}
