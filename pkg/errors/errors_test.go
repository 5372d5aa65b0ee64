package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSentinelUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid duration", NewInvalidDuration("5x"), ErrInvalidDuration},
		{"insufficient clearance", NewInsufficientClearance(2, 5), ErrInsufficientClearance},
		{"protected target", NewProtectedTarget("123", 7), ErrProtectedTarget},
		{"case not found", NewCaseNotFound(map[string]interface{}{"case_id": 42}), ErrCaseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid duration", NewInvalidDuration("banana"), true},
		{"clearance", NewInsufficientClearance(0, 3), true},
		{"protected target", NewProtectedTarget("1", 9), true},
		{"case not found", NewCaseNotFound(nil), true},
		{"store unavailable", ErrStoreUnavailable, false},
		{"arbitrary error", stderrors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserFacing(tt.err); got != tt.want {
				t.Errorf("UserFacing(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInvalidDurationMessage(t *testing.T) {
	err := NewInvalidDuration("5x")
	if !strings.Contains(err.Error(), "5x") {
		t.Errorf("Error() = %q, want it to contain the offending token", err.Error())
	}
}

func TestTruncate(t *testing.T) {
	short := "all fine"
	if got := Truncate(short); got != short {
		t.Errorf("Truncate(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("a", 3000) + "tail"
	got := Truncate(long)
	if len(got) != 2000 {
		t.Errorf("len(Truncate(long)) = %d, want 2000", len(got))
	}
	if !strings.HasSuffix(got, "tail") {
		t.Errorf("Truncate(long) lost the tail of the input")
	}
}
