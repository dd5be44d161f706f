package breaker

import (
	"context"
	"errors"

	"advocate-directory/config"
	"advocate-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

const DatabaseBreaker = "database"

// NewSettings trips after cfg.MaxFailures consecutive failures and probes
// again after cfg.Timeout. Cancelled requests do not count as failures.
func NewSettings(name string, cfg config.BreakerConfig, log *logrus.Logger) gobreaker.Settings {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))

	return gobreaker.Settings{
		Name:    name,
		Timeout: cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			willTrip := counts.ConsecutiveFailures >= cfg.MaxFailures

			if willTrip {
				log.WithFields(logrus.Fields{
					"service":              name,
					"total_requests":       counts.Requests,
					"total_failures":       counts.TotalFailures,
					"consecutive_failures": counts.ConsecutiveFailures,
					"threshold":            cfg.MaxFailures,
				}).Error("Circuit breaker about to trip")
			}

			return willTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
}

// IsOpen reports whether err was returned because the breaker rejected the
// call without running it.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
