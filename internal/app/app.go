package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context carries app-wide dependencies and metadata for one invocation.
type Context struct {
	Ctx        context.Context
	Config     Config
	Log        *zap.Logger
	InstanceID string
	Now        time.Time
}

// NewContext builds the invocation context: the logger per the log_*
// settings, tagged with a fresh instance identifier for log correlation.
// The identifier is an explicit value, not process-global state.
func NewContext(ctx context.Context, cfg Config) Context {
	id := uuid.NewString()
	return Context{
		Ctx:        ctx,
		Config:     cfg,
		Log:        NewLogger(cfg).With(zap.String("instance", id)),
		InstanceID: id,
		Now:        time.Now(),
	}
}
