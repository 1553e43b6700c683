package rules

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

type remoteConfig struct {
	message        string
	translationKey string
	strictFailure  bool
}

// RemoteOption configures a Remote rule.
type RemoteOption func(*remoteConfig)

// WithMessage overrides the error message reported when the remote
// check rejects the value.
func WithMessage(message, translationKey string) RemoteOption {
	return func(c *remoteConfig) {
		if message != "" {
			c.message = message
		}
		if translationKey != "" {
			c.translationKey = translationKey
		}
	}
}

// WithStrictFailure makes a transport failure of the remote check
// count as a validation error instead of passing. The default is
// lenient: an unreachable check is "no verdict", and the user is not
// blocked on an infrastructure failure.
func WithStrictFailure() RemoteOption {
	return func(c *remoteConfig) {
		c.strictFailure = true
	}
}

// Remote builds an asynchronous rule around a debounced check, such as
// a username-availability lookup. A rapid burst of validations invokes
// the check at most once, with the last value. The rule shares one
// debounce window across every field it is attached to, so attach a
// fresh Remote rule per independent field.
//
// Outcomes: a superseded call passes without a verdict (the newer run
// will report instead); a transport failure follows the configured
// failure policy; a false answer fails the field.
func Remote(check debounce.CheckFunc, delay time.Duration, opts ...RemoteOption) *Rule {
	cfg := remoteConfig{
		message:        "did not pass remote verification",
		translationKey: "validation.remote",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	caller := debounce.New(check, delay)

	return &Rule{
		Name:  "remote",
		Async: true,
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}

			ok, err := caller.Call(ctx, value)
			switch {
			case errors.Is(err, debounce.ErrSuperseded):
				return nil
			case err != nil:
				if !cfg.strictFailure {
					return nil
				}
				return Errors{{
					Field:          meta.Field.String(),
					Message:        "could not be verified",
					TranslationKey: "validation.remote_unavailable",
					TranslationValues: map[string]any{
						"field": meta.Field.String(),
					},
				}}
			case !ok:
				return Errors{{
					Field:          meta.Field.String(),
					Message:        cfg.message,
					TranslationKey: cfg.translationKey,
					TranslationValues: map[string]any{
						"field": meta.Field.String(),
					},
				}}
			default:
				return nil
			}
		},
	}
}
