package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lg/exercise-guidance-go-api/internal/logsink"
	"lg/exercise-guidance-go-api/internal/plan"
)

// appendTimeout bounds one sink append once it is detached from the request.
const appendTimeout = 5 * time.Second

// Planner is the single entry point presentation layers call: compute the
// plan, then record the submission.
type Planner struct {
	sink   logsink.Sink
	logger *zap.SugaredLogger
}

func NewPlanner(sink logsink.Sink, logger *zap.SugaredLogger) *Planner {
	if sink == nil {
		sink = logsink.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Planner{sink: sink, logger: logger}
}

// Submit computes the plan for in. On plan.ErrInvalidInput nothing is
// recorded. The log append is best-effort: its failure never reaches the
// caller and never alters the result. The append outlives ctx cancellation,
// so a client that disconnects after the plan is computed still gets a row.
func (p *Planner) Submit(ctx context.Context, in plan.UserInput) (plan.Result, error) {
	res, err := plan.Compute(in)
	if err != nil {
		return plan.Result{}, err
	}
	p.record(ctx, in, res)
	return res, nil
}

func (p *Planner) record(ctx context.Context, in plan.UserInput, res plan.Result) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnf("[record] log sink panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancel()

	if err := p.sink.Append(ctx, NewRecord(in, res)); err != nil {
		p.logger.Warnf("[record] log sink append failed: %v", err)
	}
}

// NewRecord flattens a submission into a log row. Enum fields are stored
// with their display labels.
func NewRecord(in plan.UserInput, res plan.Result) logsink.Record {
	return logsink.Record{
		Age:           in.Age,
		Weight:        in.WeightKG,
		Height:        in.HeightCM,
		BMI:           plan.RoundBMI(res.BMI),
		Diabetes:      in.Diabetes.Label(),
		Activity:      in.Activity.Label(),
		CalorieTarget: res.CalorieTarget,
		HealthIssue:   in.HealthIssue,
	}
}
