package commands

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"tastyfood/internal/pkg/errs"
)

// RetryPolicy bounds how often a creation is re-attempted after another caller took the
// identifier this caller had just allocated.
type RetryPolicy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

// DefaultRetryPolicy is 5 retries starting at 10ms with exponential growth.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 5, BaseDelay: 10 * time.Millisecond}
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	b := retry.NewExponential(base)
	b = retry.WithJitterPercent(25, b)
	return retry.WithMaxRetries(p.MaxRetries, b)
}

// retryOnIdentifierConflict runs attempt until it succeeds, fails with anything other
// than a conflict on identifierParam, or the policy is exhausted. Every attempt must run
// in a fresh unit of work so it re-reads the identifiers committed in the meantime.
// When retries run out the last conflict is returned unchanged.
func retryOnIdentifierConflict(
	ctx context.Context,
	policy RetryPolicy,
	logger *zap.Logger,
	identifierParam string,
	attempt func(ctx context.Context) error,
) error {
	tries := 0
	return retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		tries++
		err := attempt(ctx)
		if err == nil {
			return nil
		}

		var conflict *errs.ObjectAlreadyExistsError
		if errors.As(err, &conflict) && conflict.ParamName == identifierParam {
			logger.Warn("identifier taken by a concurrent writer, retrying",
				zap.String("param", identifierParam),
				zap.Any("value", conflict.Value),
				zap.Int("attempt", tries),
			)
			return retry.RetryableError(err)
		}
		return err
	})
}
