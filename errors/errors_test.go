package errors

import (
	stderrors "errors"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"not found", NotFound("gone"), ErrCodeNotFound},
		{"validation", Validation("bad input"), ErrCodeValidation},
		{"internal", Internal("boom", stderrors.New("cause")), ErrCodeInternal},
		{"plain error", stderrors.New("anything"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Internal("Failed to fetch earnings", cause)

	if err.Error() != "Failed to fetch earnings: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through errors.Is")
	}

	bare := NotFound("missing")
	if bare.Error() != "missing" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "missing")
	}
}
