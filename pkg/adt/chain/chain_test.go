package chain

import (
	"strconv"
	"testing"

	"github.com/ib-77/adt3/pkg/adt/option"
)

func TestStartAndOption(t *testing.T) {
	t.Parallel()
	c := Start(option.Some(5))
	if got := c.Option(); got != option.Some(5) {
		t.Fatalf("expected Some(5), got %v", got)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	if got := FromValue(7).Option(); got != option.Some(7) {
		t.Fatalf("expected Some(7), got %v", got)
	}
}

func TestThen_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()
	called := false
	c := Start(option.None[int]()).
		Then(func(v int) option.Option[int] {
			called = true
			return option.Some(v + 1)
		})
	if !c.Option().IsNone() {
		t.Fatalf("expected None to propagate, got %v", c.Option())
	}
	if called {
		t.Fatalf("next should not be called when the chain is empty")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := FromValue(3).
		Then(func(v int) option.Option[int] { return option.Some(v * 2) })
	if got := c.Option(); got != option.Some(6) {
		t.Fatalf("expected Some(6), got %v", got)
	}
}

func TestMapAndFilter(t *testing.T) {
	t.Parallel()
	got := FromValue(4).
		Map(func(v int) int { return v + 1 }).
		Filter(func(v int) bool { return v%2 == 1 }).
		Option()
	if got != option.Some(5) {
		t.Fatalf("expected Some(5), got %v", got)
	}
	got = FromValue(4).
		Filter(func(v int) bool { return v < 0 }).
		Map(func(v int) int { return v + 1 }).
		Option()
	if !got.IsNone() {
		t.Fatalf("expected None after a failed filter, got %v", got)
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()
	seen := 0
	FromValue(9).Inspect(func(v int) { seen = v })
	if seen != 9 {
		t.Fatalf("expected side effect to observe 9, saw %v", seen)
	}
}

func TestOrAndOrElse(t *testing.T) {
	t.Parallel()
	got := Start(option.None[int]()).Or(FromValue(2)).Option()
	if got != option.Some(2) {
		t.Fatalf("expected Some(2), got %v", got)
	}
	calls := 0
	got = FromValue(1).
		OrElse(func() option.Option[int] { calls++; return option.Some(3) }).
		Option()
	if got != option.Some(1) || calls != 0 {
		t.Fatalf("expected Some(1) without invoking the alternative, got %v (calls=%d)", got, calls)
	}
}

func TestTypeChangingThenAndMap(t *testing.T) {
	t.Parallel()
	parsed := Then(FromValue("12"), func(s string) option.Option[int] {
		n, err := strconv.Atoi(s)
		return option.FromOk(n, err == nil)
	})
	labeled := Map(parsed, func(n int) string { return "n=" + strconv.Itoa(n) })
	if got := labeled.Option(); got != option.Some("n=12") {
		t.Fatalf("expected Some(n=12), got %v", got)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue(7), option.Handlers[int, string]{
		OnSome: strconv.Itoa,
		OnNone: func() string { return "none" },
	})
	if got != "7" {
		t.Fatalf("expected \"7\", got %q", got)
	}
	got = Finally(Start(option.None[int]()), option.Handlers[int, string]{
		OnSome: strconv.Itoa,
		OnNone: func() string { return "none" },
	})
	if got != "none" {
		t.Fatalf("expected \"none\", got %q", got)
	}
}

func TestDependentChainScenario(t *testing.T) {
	t.Parallel()
	got := FromValue(4).
		Then(func(v int) option.Option[int] {
			if v > 0 {
				return option.Some(v * 2)
			}
			return option.None[int]()
		}).
		Map(func(v int) int { return v + 1 }).
		UnwrapOr(0)
	if got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
}
