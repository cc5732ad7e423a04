package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb timeout" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http body: %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
