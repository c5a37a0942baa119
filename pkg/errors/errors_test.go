// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/volt/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "routing_conflict",
			code:    errors.ErrRoutingConflict,
			message: "path of output item 'a/b' conflicts with 'a'",
			wantStr: "[ROUTING_CONFLICT] path of output item 'a/b' conflicts with 'a'",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileCopy, "could not copy %q to %q", "a.txt", "b.txt")
	if err.Message != `could not copy "a.txt" to "b.txt"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrRender, "could not render '/index.html'")

		if err.Code != errors.ErrRender {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrRender)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[RENDER] could not render '/index.html': base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrRoutingConflict, "conflict").
		WithDetail("path", "a/b").
		WithDetails(map[string]interface{}{"conflictsWith": "a"})

	details := errors.GetErrorDetails(err)
	if details["path"] != "a/b" || details["conflictsWith"] != "a" {
		t.Errorf("unexpected details: %v", details)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() on a plain error should be nil")
	}
}

func TestErrorCodeHelpers(t *testing.T) {
	base := errors.New(errors.ErrPromote, "could not replace output directory")
	wrapped := fmt.Errorf("build failed: %w", base)

	if !errors.IsErrorCode(wrapped, errors.ErrPromote) {
		t.Error("IsErrorCode() should see through fmt wrapping")
	}
	if !errors.IsPromotionFailure(wrapped) {
		t.Error("IsPromotionFailure() should be true for PROMOTE errors")
	}
	if errors.GetErrorCode(stderrors.New("plain")) != errors.ErrUnknown {
		t.Error("GetErrorCode() on a plain error should be UNKNOWN")
	}
	if !stderrors.Is(wrapped, errors.New(errors.ErrPromote, "")) {
		t.Error("errors.Is() should match by code")
	}
	if stderrors.Is(wrapped, errors.New(errors.ErrRender, "")) {
		t.Error("errors.Is() should not match a different code")
	}
}
