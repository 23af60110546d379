package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/pipes/pkg/rop"
)

func failure[A any](r rop.Result[A, error]) string {
	if err, isErr := r.Failure(); isErr && err != nil {
		return err.Error()
	}
	return ""
}

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	c := Start(rop.Ok[int, error](10))
	out := c.Result()
	if v, ok := out.Value(); !ok || v != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := FromValue[int, error](7).Result()
	if v, ok := out.Value(); !ok || v != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	c := Start(rop.Err[int](errors.New("boom")))
	called := false
	c2 := Then(c, func(v int) rop.Result[string, error] {
		called = true
		return rop.Ok[string, error]("ok")
	})
	out := c2.Result()
	if out.IsOk() || failure(out) != "boom" {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onOk must not be called on failure input")
	}
}

func TestThen_ChangesType(t *testing.T) {
	t.Parallel()
	c2 := Then(FromValue[int, error](4), func(v int) rop.Result[string, error] {
		return rop.Ok[string, error](strconv.Itoa(v * 2))
	})
	out := c2.Result()
	if v, ok := out.Value(); !ok || v != "8" {
		t.Fatalf("expected success '8', got %v", out)
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()

	// success path
	c2 := ThenTry(FromValue[int, error](3), func(v int) (string, error) {
		return "val_3", nil
	})
	out := c2.Result()
	if v, ok := out.Value(); !ok || v != "val_3" {
		t.Fatalf("expected success 'val_3', got %v", out)
	}

	// error path
	c4 := ThenTry(FromValue[int, error](9), func(v int) (string, error) {
		return "", errors.New("try-error")
	})
	out2 := c4.Result()
	if out2.IsOk() || failure(out2) != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", out2)
	}

	// short-circuit on failure input
	c6 := ThenTry(Start(rop.Err[int](errors.New("bad"))), func(v int) (string, error) { return "ignored", nil })
	out3 := c6.Result()
	if out3.IsOk() || failure(out3) != "bad" {
		t.Fatalf("expected failure 'bad', got %v", out3)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()

	// success path
	c2 := Map(FromValue[int, error](5), func(v int) string { return "n:" + strconv.Itoa(v) })
	out := c2.Result()
	if v, ok := out.Value(); !ok || v != "n:5" {
		t.Fatalf("expected success 'n:5', got %v", out)
	}

	// failure short-circuit
	c4 := Map(Start(rop.Err[int](errors.New("oops"))), func(v int) string { return "ignored" })
	out2 := c4.Result()
	if out2.IsOk() || failure(out2) != "oops" {
		t.Fatalf("expected failure 'oops', got %v", out2)
	}
}

func TestBimap(t *testing.T) {
	t.Parallel()

	toLen := func(s string) int { return len(s) }
	inc := func(v int) int { return v + 1 }

	out := Bimap(Start(rop.Err[int]("abcd")), inc, toLen).Result()
	if e, isErr := out.Failure(); !isErr || e != 4 {
		t.Fatalf("expected Err(4), got %v", out)
	}

	out2 := Bimap(FromValue[int, string](4), inc, toLen).Result()
	if v, ok := out2.Value(); !ok || v != 5 {
		t.Fatalf("expected Ok(5), got %v", out2)
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	called := false
	c := FromValue[int, error](11).Ensure(func(v int) { called = true })
	out := c.Result()
	if v, ok := out.Value(); !ok || v != 11 {
		t.Fatalf("expected success with 11, got %v", out)
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onOk for success result")
	}

	// failure path should not call onOk
	called = false
	c2 := Start(rop.Err[int](errors.New("x"))).Ensure(func(v int) { called = true })
	out2 := c2.Result()
	if out2.IsOk() || failure(out2) != "x" {
		t.Fatalf("expected failure 'x', got %v", out2)
	}
	if called {
		t.Fatalf("Ensure onOk must not be called for failure result")
	}
}

func TestFinally_SuccessFailure(t *testing.T) {
	t.Parallel()

	// success
	s := Finally(FromValue[int, error](2),
		func(v int) string { return "ok" },
		func(err error) string { return "fail" },
	)
	if s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}

	// failure
	f := Finally(Start(rop.Err[int](errors.New("e"))),
		func(v int) string { return "ok" },
		func(err error) string { return "fail" },
	)
	if f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
}
