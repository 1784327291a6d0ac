package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module names the functional area a log line belongs to.
type Module string

const (
	ModuleCar          Module = "car"
	ModuleMaintenance  Module = "maintenance"
	ModuleReminder     Module = "reminder"
	ModuleNotification Module = "notification"
	ModuleDashboard    Module = "dashboard"
	ModuleLocation     Module = "location"
	ModuleScheduler    Module = "scheduler"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	m, _ := ctx.Value(moduleKey).(Module)

	return m
}

// ValidateAndExtractRequestID keeps an incoming UUID request id and replaces
// anything else with a fresh one.
func ValidateAndExtractRequestID(header string) string {
	if id, err := uuid.Parse(header); err == nil {
		return id.String()
	}

	return uuid.Must(uuid.NewV7()).String()
}
