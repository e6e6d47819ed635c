// Package alert provides functionality for reporting internal errors with
// cooldown management, preventing alert fatigue by enforcing a minimum
// interval between notifications for the same operation and error code.
package alert

import (
	"context"
	"sync"
	"time"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/meta"
)

// Config defines configuration options for the alert package.
type Config struct {
	// Cooldown is the minimum interval between alerts for the same
	// operation and error code combination.
	Cooldown time.Duration `yaml:"cooldown" default:"5m"`
}

// Provider defines the interface for sending error alerts.
type Provider interface {
	// SendError sends an error alert with the given details.
	// errCode is a specific code identifying the error, msg is a
	// human-readable error message, operation describes the operation
	// during which the error occurred, and details carries additional
	// string key-value context.
	// Returns an error if sending the alert fails.
	SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error
}

// NewLogProvider creates a Provider that reports alerts through the given
// logger, applying the configured cooldown per operation+code pair.
func NewLogProvider(cfg Config, log logger.Logger) Provider {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 5 * time.Minute
	}
	return &logProvider{
		cfg:      cfg,
		logger:   log.Named("alert"),
		now:      time.Now,
		lastSent: make(map[string]time.Time),
	}
}

// NewNoopProvider creates a Provider that discards every alert.
// Useful in testing environments.
func NewNoopProvider() Provider {
	return noopProvider{}
}

type logProvider struct {
	cfg    Config
	logger logger.Logger
	now    func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func (p *logProvider) SendError(
	ctx context.Context,
	errCode, msg, operation string,
	details map[string]string,
) error {
	if details == nil {
		details = make(map[string]string)
	}
	details["service_name"] = meta.GetServiceName()
	details["service_version"] = meta.GetServiceVersion()

	if !p.shouldSend(operation, errCode) {
		return nil
	}

	p.logger.
		WithContext(ctx).
		With(
			"error_code", errCode,
			"operation", operation,
			"details", details,
		).
		Error(msg)

	return nil
}

// shouldSend checks and updates the cooldown window for an operation+code pair.
func (p *logProvider) shouldSend(operation, errCode string) bool {
	key := operation + ":" + errCode
	now := p.now()

	p.mu.Lock()
	defer p.mu.Unlock()

	if last, ok := p.lastSent[key]; ok && now.Sub(last) < p.cfg.Cooldown {
		return false
	}
	p.lastSent[key] = now
	return true
}

type noopProvider struct{}

func (noopProvider) SendError(context.Context, string, string, string, map[string]string) error {
	return nil
}
