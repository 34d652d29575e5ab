package logsink

import (
	"context"
	"fmt"
)

// Kinds accepted by Open.
const (
	KindCSV      = "csv"
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
	KindNone     = "none"
)

// Options selects and configures a sink.
type Options struct {
	Kind        string
	CSVPath     string
	DatabaseURL string
	SQLitePath  string
}

// Open builds the sink named by opts.Kind.
func Open(ctx context.Context, opts Options) (Sink, error) {
	switch opts.Kind {
	case KindCSV, "":
		return NewCSVSink(opts.CSVPath)
	case KindPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres sink requires DB_URL")
		}
		return NewPostgresSink(ctx, opts.DatabaseURL)
	case KindSQLite:
		if opts.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite sink requires SQLITE_PATH")
		}
		return NewSQLiteSink(ctx, opts.SQLitePath)
	case KindNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown log sink %q", opts.Kind)
	}
}
