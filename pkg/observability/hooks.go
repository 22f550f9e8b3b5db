package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/minuterie/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every transition at Info, or at Error when
// the action failed.
func LogHooks(logger *slog.Logger, names domain.StateNames) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			attrs := []any{
				"cycle", e.Cycle,
				"from", names.Name(e.From),
				"to", names.Name(e.To),
				"guard", e.Guard,
				"action", e.Action,
			}
			if e.Err != "" {
				logger.ErrorContext(ctx, "transition action failed", append(attrs, "error", e.Err)...)
				return
			}
			logger.InfoContext(ctx, "transition", attrs...)
		},
	}
}
