package governor_test

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/swagscan/internal/engine/governor"
)

var _ ports.Permit = (*governor.Permit)(nil)

func TestNew_DefaultLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"positive", 3, 3},
		{"zero", 0, domain.DefaultWorkers},
		{"negative", -5, domain.DefaultWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, governor.New(tt.limit).Limit())
		})
	}
}

func TestGovernor_BlocksAtLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := governor.New(2)
		ctx := context.Background()

		p1, err := g.Acquire(ctx)
		require.NoError(t, err)
		_, err = g.Acquire(ctx)
		require.NoError(t, err)

		acquired := make(chan *governor.Permit)
		go func() {
			p, acqErr := g.Acquire(ctx)
			if acqErr != nil {
				t.Errorf("unexpected error: %v", acqErr)
			}
			acquired <- p
		}()

		synctest.Wait()
		select {
		case <-acquired:
			t.Fatal("third permit admitted while at capacity")
		default:
		}
		assert.Equal(t, 2, g.InFlight())

		p1.Release()
		p3 := <-acquired
		require.NotNil(t, p3)
		assert.Equal(t, 2, g.InFlight())
		assert.Equal(t, 2, g.Peak())
	})
}

func TestGovernor_ReleaseIsIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := governor.New(1)
		ctx := context.Background()

		p, err := g.Acquire(ctx)
		require.NoError(t, err)
		p.Release()
		p.Release()
		assert.Equal(t, 0, g.InFlight())

		held, err := g.Acquire(ctx)
		require.NoError(t, err)

		// A double release must not have created extra capacity.
		blocked := make(chan struct{})
		go func() {
			_, _ = g.Acquire(ctx)
			close(blocked)
		}()
		synctest.Wait()
		select {
		case <-blocked:
			t.Fatal("double release leaked capacity")
		default:
		}
		assert.Equal(t, 1, g.InFlight())

		held.Release()
		<-blocked
	})
}

func TestGovernor_AcquireHonorsContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := governor.New(1)

		_, err := g.Acquire(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		p, err := g.Acquire(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, p)
		assert.Equal(t, 1, g.InFlight())
	})
}

func TestGovernor_PeakNeverExceedsLimit(t *testing.T) {
	g := governor.New(4)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := g.Acquire(ctx)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			defer p.Release()
			if n := g.InFlight(); n > 4 {
				t.Errorf("in flight %d exceeds limit", n)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, g.Peak(), 4)
	assert.Equal(t, 0, g.InFlight())
}
