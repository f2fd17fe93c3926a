package stream

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

func TestWithLogging_PassesThrough(t *testing.T) {
	log := logger.NewDefault("test")
	it := WithLogging[int](FromSlice([]int{1, 2}), log, "orders")

	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestWithLogging_ErrorPassesThrough(t *testing.T) {
	want := errors.New("pull failed")
	src := FromFunc(func(context.Context) (int, bool, error) {
		return 0, false, want
	}, nil)
	it := WithLogging[int](src, logger.NewDefault("test"), "orders")

	if _, _, err := it.Next(context.Background()); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestWithTracing_PassesThrough(t *testing.T) {
	it := WithTracing[int](FromSlice([]int{3, 4}), "orders")

	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 4}) {
		t.Errorf("got %v, want [3 4]", got)
	}
}

func TestWithMetrics_PassesThrough(t *testing.T) {
	metrics, err := observability.NewMetrics(observability.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	it := WithMetrics[int](FromSlice([]int{5}), metrics, "orders")

	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{5}) {
		t.Errorf("got %v, want [5]", got)
	}
}

func TestDecoratorsComposeWithPeekable(t *testing.T) {
	log := logger.NewDefault("test")
	src := WithLogging[int](WithTracing[int](FromSlice([]int{1, 2, 3}), "orders"), log, "orders")
	p := NewPeekable[int](src)
	defer p.Close()

	head, err := p.PeekN(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(head, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", head)
	}
}
