package predicate

import (
	"context"
	"errors"
	"testing"
)

func TestFunc(t *testing.T) {
	even := Func[int](func(n int) bool { return n%2 == 0 })

	got, err := even.Test(4).Await(context.Background())
	if err != nil || !got {
		t.Errorf("Test(4) = (%v, %v), want (true, nil)", got, err)
	}
	got, err = even.Test(5).Await(context.Background())
	if err != nil || got {
		t.Errorf("Test(5) = (%v, %v), want (false, nil)", got, err)
	}
}

func TestFunc_CompletesUnderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Func[string](func(s string) bool { return s != "" })
	got, err := p.Test("x").Await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("got false, want true")
	}
}

func TestAsyncFunc_ErrorPassthrough(t *testing.T) {
	want := errors.New("cannot decide")
	p := AsyncFunc[int](func(_ context.Context, _ int) (bool, error) {
		return false, want
	})
	if _, err := p.Test(1).Await(context.Background()); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestMutFunc_MutatesDuringTest(t *testing.T) {
	p := MutFunc[int](func(n *int) bool {
		*n++
		return *n > 2
	})

	v := 1
	got, err := p.TestMut(&v).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got || v != 2 {
		t.Errorf("got (%v, v=%d), want (false, v=2)", got, v)
	}
}

func TestMutAsyncFunc(t *testing.T) {
	p := MutAsyncFunc[int](func(_ context.Context, n *int) (bool, error) {
		return *n == 0, nil
	})
	v := 0
	got, err := p.TestMut(&v).Await(context.Background())
	if err != nil || !got {
		t.Errorf("got (%v, %v), want (true, nil)", got, err)
	}
}
