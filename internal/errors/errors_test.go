package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorChain(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk gone")
	err := Wrap(CodeStorage, "load symbol", cause)

	if err.Error() != "load symbol" {
		t.Errorf("Error() = %q, want %q", err.Error(), "load symbol")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !stderrors.Is(err, New(CodeStorage, "anything")) {
		t.Error("errors.Is by code = false, want true")
	}
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	if got := GetCode(New(CodeNotFound, "missing")); got != CodeNotFound {
		t.Errorf("GetCode() = %q, want %q", got, CodeNotFound)
	}
	wrapped := fmt.Errorf("outer: %w", New(CodeInvalidCodepoint, "bad"))
	if got := GetCode(wrapped); got != CodeInvalidCodepoint {
		t.Errorf("GetCode(wrapped) = %q, want %q", got, CodeInvalidCodepoint)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidCodepoint, http.StatusNotFound},
		{CodeInvalidLanguage, http.StatusNotFound},
		{CodeNotFound, http.StatusNotFound},
		{CodeEmptyDataset, http.StatusServiceUnavailable},
		{CodeStorage, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}

	if got := HTTPStatusFor(nil); got != http.StatusOK {
		t.Errorf("HTTPStatusFor(nil) = %d, want 200", got)
	}
	if got := HTTPStatusFor(New(CodeNotFound, "missing")); got != http.StatusNotFound {
		t.Errorf("HTTPStatusFor(not found) = %d, want 404", got)
	}
}
