package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/circuitbreaker"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/retry"
)

// Message is a single outbound text message. To must be in E.164 form.
type Message struct {
	To   string
	Body string
}

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks github.com/evproyectos/aventados-isw-server/internal/pkg/sms Sender

// Sender delivers a message and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NewSender builds the provider selected by cfg.Provider, wrapped with retries and a circuit breaker
func NewSender(ctx context.Context, cfg models.SMSConfig, zl *logger.ZapLogger) (Sender, error) {
	var provider Sender
	switch cfg.Provider {
	case "twilio":
		if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.FromNumber == "" {
			return nil, fmt.Errorf("twilio provider requires account sid, auth token and from number")
		}
		provider = NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.FromNumber)
	case "sns":
		s, err := NewSNSSender(ctx, cfg.AWSRegion, cfg.SenderID)
		if err != nil {
			return nil, err
		}
		provider = s
	case "log", "":
		return NewLogSender(zl), nil
	default:
		return nil, fmt.Errorf("unknown SMS provider %q", cfg.Provider)
	}

	return NewGuardedSender(provider, cfg.Provider, cfg.MaxRetries, cfg.BaseDelay, zl), nil
}

// LogSender writes messages to the log instead of delivering them
type LogSender struct {
	logger *logger.ZapLogger
}

func NewLogSender(zl *logger.ZapLogger) *LogSender {
	return &LogSender{logger: zl}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	s.logger.Info("SMS (log provider)",
		logger.String("to", msg.To),
		logger.String("body", msg.Body))
	return "", nil
}

// GuardedSender retries transient provider failures and stops calling a provider that keeps failing
type GuardedSender struct {
	next    Sender
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

func NewGuardedSender(next Sender, name string, maxRetries int, baseDelay time.Duration, zl *logger.ZapLogger) *GuardedSender {
	rc := retry.DefaultConfig()
	rc.MaxRetries = maxRetries
	if baseDelay > 0 {
		rc.BaseDelay = baseDelay
	}
	return &GuardedSender{
		next:    next,
		retrier: retry.New(rc, zl),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("sms_"+name), zl),
	}
}

func (g *GuardedSender) Send(ctx context.Context, msg Message) (string, error) {
	var id string
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.breaker.Execute(ctx, func(ctx context.Context) error {
			var err error
			id, err = g.next.Send(ctx, msg)
			return err
		})
	})
	return id, err
}
