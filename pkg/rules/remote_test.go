package rules_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestRemote(t *testing.T) {
	t.Parallel()

	meta := rules.Meta{Field: fieldpath.MustParse("username")}
	all := rules.Values{}

	t.Run("accepted value passes", func(t *testing.T) {
		t.Parallel()

		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			return true, nil
		}, time.Millisecond)

		assert.True(t, r.Async)
		assert.Empty(t, r.Check(context.Background(), "alice", all, meta))
	})

	t.Run("rejected value fails with the configured message", func(t *testing.T) {
		t.Parallel()

		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			return false, nil
		}, time.Millisecond, rules.WithMessage("username is taken", "validation.username_taken"))

		errs := r.Check(context.Background(), "alice", all, meta)
		require.Len(t, errs, 1)
		assert.Equal(t, "username is taken", errs[0].Message)
		assert.Equal(t, "validation.username_taken", errs[0].TranslationKey)
	})

	t.Run("empty value skips the check", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			calls.Add(1)
			return false, nil
		}, time.Millisecond)

		assert.Empty(t, r.Check(context.Background(), "", all, meta))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("transport failure passes by default", func(t *testing.T) {
		t.Parallel()

		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			return false, errors.New("connection refused")
		}, time.Millisecond)

		assert.Empty(t, r.Check(context.Background(), "alice", all, meta))
	})

	t.Run("transport failure fails under strict policy", func(t *testing.T) {
		t.Parallel()

		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			return false, errors.New("connection refused")
		}, time.Millisecond, rules.WithStrictFailure())

		errs := r.Check(context.Background(), "alice", all, meta)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.remote_unavailable", errs[0].TranslationKey)
	})

	t.Run("superseded call reports no verdict", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rules.Remote(func(ctx context.Context, value any) (bool, error) {
			calls.Add(1)
			return false, nil
		}, 50*time.Millisecond)

		var wg sync.WaitGroup
		var first, second rules.Errors
		wg.Add(2)
		go func() {
			defer wg.Done()
			first = r.Check(context.Background(), "ali", all, meta)
		}()
		time.Sleep(10 * time.Millisecond)
		go func() {
			defer wg.Done()
			second = r.Check(context.Background(), "alice", all, meta)
		}()
		wg.Wait()

		assert.Empty(t, first) // displaced, no verdict
		assert.NotEmpty(t, second)
		assert.Equal(t, int32(1), calls.Load())
	})
}
