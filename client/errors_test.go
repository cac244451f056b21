package client

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{
			name: "403 is quota",
			err:  &googleapi.Error{Code: 403, Message: "quotaExceeded"},
			want: ErrorClassQuota,
		},
		{
			name: "429 is transient",
			err:  &googleapi.Error{Code: 429},
			want: ErrorClassTransient,
		},
		{
			name: "500 is transient",
			err:  &googleapi.Error{Code: 500},
			want: ErrorClassTransient,
		},
		{
			name: "503 is transient",
			err:  &googleapi.Error{Code: 503},
			want: ErrorClassTransient,
		},
		{
			name: "404 is permanent",
			err:  &googleapi.Error{Code: 404},
			want: ErrorClassPermanent,
		},
		{
			name: "400 is permanent",
			err:  &googleapi.Error{Code: 400},
			want: ErrorClassPermanent,
		},
		{
			name: "wrapped 403 is quota",
			err:  fmt.Errorf("call failed: %w", &googleapi.Error{Code: 403}),
			want: ErrorClassQuota,
		},
		{
			name: "network error is transient",
			err:  errors.New("connection reset by peer"),
			want: ErrorClassTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	inner := &googleapi.Error{Code: 404, Message: "not found"}
	err := &APIError{
		Resource:   ResourceVideos,
		StatusCode: 404,
		Class:      ErrorClassPermanent,
		Err:        inner,
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		t.Fatal("Expected APIError to unwrap to googleapi.Error")
	}
	if gerr.Code != 404 {
		t.Errorf("Expected code 404, got %d", gerr.Code)
	}
}
