package projection

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestFunc_CompletesUnderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Func[int, string](strconv.Itoa)
	got, err := p.Project(41).Await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "41" {
		t.Errorf("got %q, want %q", got, "41")
	}
}

func TestFunc_FuturesAreIndependent(t *testing.T) {
	p := Func[int, int](func(n int) int { return n * 2 })
	a := p.Project(1)
	b := p.Project(2)

	gotB, _ := b.Await(context.Background())
	gotA, _ := a.Await(context.Background())
	if gotA != 2 || gotB != 4 {
		t.Errorf("got (%d, %d), want (2, 4)", gotA, gotB)
	}
}

func TestFunc_FusedSingleInvocation(t *testing.T) {
	calls := 0
	p := Func[int, int](func(n int) int {
		calls++
		return n
	})
	f := p.Project(9)
	for i := 0; i < 3; i++ {
		if got, _ := f.Await(context.Background()); got != 9 {
			t.Errorf("await %d: got %d, want 9", i, got)
		}
	}
	if calls != 1 {
		t.Errorf("function invoked %d times, want 1", calls)
	}
}

func TestAsyncFunc_ForwardsResultAndError(t *testing.T) {
	want := errors.New("lookup failed")
	p := AsyncFunc[int, string](func(_ context.Context, n int) (string, error) {
		if n < 0 {
			return "", want
		}
		return strconv.Itoa(n), nil
	})

	got, err := p.Project(5).Await(context.Background())
	if err != nil || got != "5" {
		t.Errorf("got (%q, %v), want (\"5\", nil)", got, err)
	}
	if _, err := p.Project(-1).Await(context.Background()); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestAsyncFunc_ReceivesAwaitContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "driver")

	p := AsyncFunc[int, string](func(ctx context.Context, _ int) (string, error) {
		v, _ := ctx.Value(key{}).(string)
		return v, nil
	})
	got, err := p.Project(0).Await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "driver" {
		t.Errorf("got %q, want %q", got, "driver")
	}
}

// An asynchronous projection that suspends k times completes only after its
// k-th suspension point unblocks.
func TestAsyncFunc_CompletesAfterSteps(t *testing.T) {
	const k = 3
	steps := make(chan struct{})
	p := AsyncFunc[int, int](func(ctx context.Context, n int) (int, error) {
		for i := 0; i < k; i++ {
			select {
			case <-steps:
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
		return n + 1, nil
	})

	done := make(chan int, 1)
	go func() {
		got, err := p.Project(10).Await(context.Background())
		if err != nil {
			t.Error(err)
		}
		done <- got
	}()

	for i := 0; i < k-1; i++ {
		steps <- struct{}{}
		select {
		case got := <-done:
			t.Fatalf("completed with %d after %d of %d steps", got, i+1, k)
		case <-time.After(10 * time.Millisecond):
		}
	}

	steps <- struct{}{}
	select {
	case got := <-done:
		if got != 11 {
			t.Errorf("got %d, want 11", got)
		}
	case <-time.After(time.Second):
		t.Fatal("did not complete after final step")
	}
}

func TestAsyncFunc_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := AsyncFunc[int, int](func(ctx context.Context, _ int) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if _, err := p.Project(0).Await(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestMutFunc_MutatesInPlace(t *testing.T) {
	p := MutFunc[int, int](func(n *int) int {
		*n *= 10
		return *n
	})

	v := 4
	got, err := p.ProjectMut(&v).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != 40 || v != 40 {
		t.Errorf("got (%d, v=%d), want (40, v=40)", got, v)
	}
}

func TestMutAsyncFunc_ErrorPassthrough(t *testing.T) {
	want := errors.New("reject")
	p := MutAsyncFunc[int, bool](func(_ context.Context, _ *int) (bool, error) {
		return false, want
	})
	v := 1
	if _, err := p.ProjectMut(&v).Await(context.Background()); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}
