package solo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/attempt/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func later[T any](v T, d time.Duration) rop.Awaitable[T] {
	p := rop.NewPromise[T]()
	go func() {
		time.Sleep(d)
		p.Resolve(v)
	}()
	return p
}

func rejectLater[T any](reason any, d time.Duration) rop.Awaitable[T] {
	p := rop.NewPromise[T]()
	go func() {
		time.Sleep(d)
		p.Reject(reason)
	}()
	return p
}

func TestAttemptAsync_Success(t *testing.T) {
	t.Parallel()

	p := AttemptAsync(func() rop.Awaitable[string] { return later("Data fetched successfully", 5*time.Millisecond) })

	res := p.Await(context.Background())
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Data fetched successfully", res.Result())
}

func TestAttemptAsync_Rejection(t *testing.T) {
	t.Parallel()

	p := AttemptAsync(func() rop.Awaitable[string] { return rejectLater[string](errors.New("Fetch failed"), 5*time.Millisecond) })

	res := p.Await(context.Background())
	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "Fetch failed")
}

func TestAttemptAsync_NonErrorRejection(t *testing.T) {
	t.Parallel()

	p := AttemptAsync(func() rop.Awaitable[int] { return rejectLater[int]("rejected with string", time.Millisecond) })

	res := p.Await(context.Background())
	require.True(t, res.IsFailure())
	var thrown *rop.ThrownError
	require.ErrorAs(t, res.Err(), &thrown)
	assert.EqualError(t, res.Err(), "rejected with string")
}

func TestAttemptAsync_DoesNotBlock(t *testing.T) {
	t.Parallel()

	promise := rop.NewPromise[int]()
	p := AttemptAsync(func() rop.Awaitable[int] { return promise })

	_, settled := p.Settled()
	assert.False(t, settled)

	promise.Resolve(1)
	assert.Equal(t, 1, p.Await(context.Background()).Result())
}

func TestAttemptAsync_SyncPanicSettlesAtOnce(t *testing.T) {
	t.Parallel()

	p := AttemptAsync(func() rop.Awaitable[int] { panic("sync failure") })

	res, settled := p.Settled()
	require.True(t, settled)
	assert.EqualError(t, res.Err(), "sync failure")
}

func TestAttemptAsync_ReturnValueDecidesDuality(t *testing.T) {
	t.Parallel()

	sometimes := func(fast bool) func() rop.Awaitable[int] {
		return func() rop.Awaitable[int] {
			if fast {
				return rop.Now(1)
			}
			return later(2, time.Millisecond)
		}
	}

	fast := AttemptAsync(sometimes(true))
	res, settled := fast.Settled()
	require.True(t, settled)
	assert.Equal(t, 1, res.Result())

	slow := AttemptAsync(sometimes(false))
	assert.Equal(t, 2, slow.Await(context.Background()).Result())
}

func TestAttemptAsync_Nested(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := AttemptAsync(func() rop.Awaitable[string] {
		return rop.AwaitFunc[string](func(ctx context.Context) (string, error) {
			inner := AttemptAsync(func() rop.Awaitable[string] { return later("nested value", time.Millisecond) }).Await(ctx)
			v, err := inner.Unwrap()
			if err != nil {
				return "", err
			}
			return v + "!", nil
		})
	})

	assert.Equal(t, "nested value!", p.Await(ctx).Result())
}

func TestAndThenAsync_Order(t *testing.T) {
	t.Parallel()

	var order []int
	step := func(n int) func(int) *rop.Pending[int] {
		return func(v int) *rop.Pending[int] {
			order = append(order, n)
			return AttemptAsync(func() rop.Awaitable[int] { return later(v+n, time.Millisecond) })
		}
	}

	p := PipeAsync(AttemptAsync(func() rop.Awaitable[int] { return rop.Now(0) }), step(1), step(2), step(3))

	assert.Empty(t, order)
	res := p.Await(context.Background())
	require.True(t, res.IsSuccess())
	assert.Equal(t, 6, res.Result())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestAndThenAsync_ShortCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	failed := rop.Settle(rop.Fail[int](errors.New("boom")))

	p := AndThenAsync(failed, func(v int) *rop.Pending[string] {
		calls.Add(1)
		return rop.Settle(rop.Success("x"))
	})

	res, settled := p.Settled()
	require.True(t, settled)
	assert.EqualError(t, res.Err(), "boom")
	assert.Zero(t, calls.Load())
}

func TestPipeAsync_StopsAtFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	fail := func(int) *rop.Pending[int] {
		calls++
		return AttemptAsync(func() rop.Awaitable[int] { return rejectLater[int]("s2", time.Millisecond) })
	}
	never := func(int) *rop.Pending[int] {
		calls++
		return rop.Settle(rop.Success(0))
	}

	res := PipeAsync(rop.Settle(rop.Success(1)), fail, never).Await(context.Background())

	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "s2")
	assert.Equal(t, 1, calls)
}

func TestMapAsync(t *testing.T) {
	t.Parallel()

	p := MapAsync(AttemptAsync(func() rop.Awaitable[int] { return later(20, time.Millisecond) }),
		func(v int) int { return v + 1 })

	assert.Equal(t, 21, p.Await(context.Background()).Result())

	settled := MapAsync(rop.Settle(rop.Success(1)), func(v int) int { return v * 10 })
	res, ok := settled.Settled()
	require.True(t, ok)
	assert.Equal(t, 10, res.Result())
}

func TestOrElseAsync(t *testing.T) {
	t.Parallel()

	var tried []string
	source := func(name string, ok bool) func() *rop.Pending[string] {
		return func() *rop.Pending[string] {
			tried = append(tried, name)
			if ok {
				return AttemptAsync(func() rop.Awaitable[string] { return later(name, time.Millisecond) })
			}
			return AttemptAsync(func() rop.Awaitable[string] { return rejectLater[string](name+" down", time.Millisecond) })
		}
	}

	p := OrElseAsync(OrElseAsync(source("a", false)(), source("b", false)), source("c", true))

	res := p.Await(context.Background())
	require.True(t, res.IsSuccess())
	assert.Equal(t, "c", res.Result())
	assert.Equal(t, []string{"a", "b", "c"}, tried)
}

func TestOrElseAsync_SettledSuccessSkipsFallback(t *testing.T) {
	t.Parallel()

	in := rop.Settle(rop.Success(1))
	out := OrElseAsync(in, func() *rop.Pending[int] {
		t.Fatal("fallback must not run")
		return nil
	})

	assert.Same(t, in, out)
}

func TestOrElseAsync_CancelledWaitSkipsFallback(t *testing.T) {
	t.Parallel()

	calls := 0
	p := OrElseAsync(rop.FromAwaitable[int](rop.NewPromise[int]()), func() *rop.Pending[int] {
		calls++
		return rop.Settle(rop.Success(1))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := p.Await(ctx)
	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), context.Canceled)
	assert.Zero(t, calls)
}

func TestOrElseAsync_DeadlineDuringInputStillRecovers(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	in := rop.Defer(func(context.Context) rop.Result[int] {
		time.Sleep(30 * time.Millisecond)
		return rop.Fail[int](errors.New("primary down"))
	})
	p := OrElseAsync(in, func() *rop.Pending[int] {
		calls.Add(1)
		return rop.Settle(rop.Success(7))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	first := p.Await(ctx)
	require.True(t, first.IsFailure())
	assert.ErrorIs(t, first.Err(), context.DeadlineExceeded)
	_, settled := p.Settled()
	assert.False(t, settled)

	second := p.Await(context.Background())
	require.True(t, second.IsSuccess())
	assert.Equal(t, 7, second.Result())
	assert.Equal(t, int32(1), calls.Load())
}

func TestMapAsync_StepPanicEscapes(t *testing.T) {
	t.Parallel()

	boom := func(int) int { panic("boom") }

	assert.PanicsWithValue(t, "boom", func() {
		MapAsync(rop.Settle(rop.Success(1)), boom)
	})

	promise := rop.NewPromise[int]()
	pending := MapAsync(rop.FromAwaitable[int](promise), boom)
	promise.Resolve(1)
	assert.PanicsWithValue(t, "boom", func() { pending.Await(context.Background()) })
}

func TestAndThenAsync_StepPanicEscapes(t *testing.T) {
	t.Parallel()

	boom := func(int) *rop.Pending[int] { panic("boom") }

	promise := rop.NewPromise[int]()
	pending := AndThenAsync(rop.FromAwaitable[int](promise), boom)
	promise.Resolve(1)
	assert.PanicsWithValue(t, "boom", func() { pending.Await(context.Background()) })

	settled := AndThenAsync(rop.Settle(rop.Success(1)), boom)
	assert.PanicsWithValue(t, "boom", func() { settled.Await(context.Background()) })
}
