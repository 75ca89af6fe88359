// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a production logger when env is "production", a development
// logger otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
