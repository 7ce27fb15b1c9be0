package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeNotFound, "command missing")
	if !errors.Is(err, New(CodeNotFound, "different message")) {
		t.Fatal("expected match by code")
	}
	if errors.Is(err, New(CodeStorageFailure, "command missing")) {
		t.Fatal("expected mismatch across codes")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeUploadFailed, "store image", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "store image" {
		t.Fatalf("message = %q, want %q", err.Error(), "store image")
	}
}

func TestCauseOf(t *testing.T) {
	cause := fmt.Errorf("database is locked")
	err := fmt.Errorf("handler: %w", Wrap(CodeStorageFailure, "persist command", cause))
	if got := CauseOf(err); got != cause {
		t.Fatalf("CauseOf = %v, want %v", got, cause)
	}
	if got := CauseOf(New(CodeNotFound, "no cause")); got != nil {
		t.Fatalf("CauseOf without cause = %v, want nil", got)
	}
	if got := CauseOf(errors.New("plain")); got != nil {
		t.Fatalf("CauseOf plain = %v, want nil", got)
	}
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeImageTooLarge, "file over limit"))
	if got := CodeOf(err); got != CodeImageTooLarge {
		t.Fatalf("CodeOf = %q, want %q", got, CodeImageTooLarge)
	}
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf plain = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeCommandFieldRequired, http.StatusBadRequest},
		{CodeImageTooLarge, http.StatusRequestEntityTooLarge},
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeStorageFailure, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("%s status = %d, want %d", tc.code, got, tc.want)
		}
	}
}
