package api

import (
	"log/slog"
	"os"
)

// SetupGlobalHandler installs a JSON slog logger tagged with the service
// name as the process-wide default.
func SetupGlobalHandler(serviceName string) {
	jsonHandler := slog.NewJSONHandler(os.Stdout, nil)
	logger := slog.New(jsonHandler).With(slog.String("service", serviceName))
	slog.SetDefault(logger)

	slog.Info("Logger initialized", "service", serviceName)
}
