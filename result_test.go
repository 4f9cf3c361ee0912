package buildkit

import (
	"errors"
	"testing"
)

func TestBuildResult_Unwrap(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		result := NewBuildResult("hello", nil)
		value, err := result.Unwrap()

		if value != "hello" {
			t.Errorf("Unwrap() value = %v, want 'hello'", value)
		}
		if err != nil {
			t.Errorf("Unwrap() err = %v, want nil", err)
		}
	})

	t.Run("with error", func(t *testing.T) {
		testErr := errors.New("test error")
		result := NewBuildResult("", testErr)
		value, err := result.Unwrap()

		if value != "" {
			t.Errorf("Unwrap() value = %v, want ''", value)
		}
		if err != testErr {
			t.Errorf("Unwrap() err = %v, want testErr", err)
		}
	})
}

func TestBuildResult_Must(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		if value := BuildResultOk(42).Must(); value != 42 {
			t.Errorf("Must() = %v, want 42", value)
		}
	})

	t.Run("with error panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Must() should panic with error")
			}
		}()

		_ = BuildResultError[int](errors.New("test error")).Must()
	})
}

func TestBuildResult_Accessors(t *testing.T) {
	ok := BuildResultOk("v")
	if !ok.Ok() || ok.Err() != nil || ok.Value() != "v" {
		t.Errorf("BuildResultOk accessors = %v, %v, %v", ok.Ok(), ok.Err(), ok.Value())
	}

	testErr := errors.New("e")
	bad := BuildResultError[string](testErr)
	if bad.Ok() || bad.Err() != testErr || bad.Value() != "" {
		t.Errorf("BuildResultError accessors = %v, %v, %q", bad.Ok(), bad.Err(), bad.Value())
	}
}
