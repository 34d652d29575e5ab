package logsink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink inserts rows into exercise_logs (see db/ migrations).
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink creates a connection pool for dsn. Handlers append
// concurrently, so the sink holds a pool rather than one conn.
func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres sink: parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// migrations on poolers that cache prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("postgres sink: connect: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (s *PostgresSink) Append(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO exercise_logs
			(age, weight_kg, height_cm, bmi, diabetes, activity, calorie_target, health_issue)
		 VALUES (@age, @weight, @height, @bmi, @diabetes, @activity, @calorieTarget, @healthIssue)`,
		pgx.NamedArgs{
			"age":           rec.Age,
			"weight":        rec.Weight,
			"height":        rec.Height,
			"bmi":           rec.BMI,
			"diabetes":      rec.Diabetes,
			"activity":      rec.Activity,
			"calorieTarget": rec.CalorieTarget,
			"healthIssue":   rec.HealthIssue,
		})
	if err != nil {
		return fmt.Errorf("postgres sink: insert: %w", err)
	}
	return nil
}

func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}

var _ Sink = (*PostgresSink)(nil)
