package duration

import (
	"errors"
	"testing"
	"time"

	werrors "github.com/WardenLabs/WardenGo/pkg/errors"
)

func TestParseValidTokens(t *testing.T) {
	tests := []struct {
		token    string
		expected time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"1y", 365 * 24 * time.Hour},
		{"90M", 90 * time.Minute}, // unit is case-insensitive
		{"120S", 120 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token, false)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestParseInvalidTokens(t *testing.T) {
	tokens := []string{
		"",
		"d",
		"7",
		"7x",
		"x7d",
		"7.5d",
		"-1d",
		"+5m",
		"+0s",
		" 5m",
		"d7",
		"sevend",
		"99999999999999999999y", // beyond int64
		"9999999999999y",        // overflows when scaled to nanoseconds
	}

	for _, token := range tokens {
		t.Run("invalid_"+token, func(t *testing.T) {
			if _, err := Parse(token, true); err == nil {
				t.Errorf("Parse(%q) should fail", token)
			} else if !errors.Is(err, werrors.ErrInvalidDuration) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidDuration", token, err)
			}
		})
	}
}

func TestParseSubMinute(t *testing.T) {
	// Below 60 seconds is rejected for sanctions
	if _, err := Parse("30s", false); !errors.Is(err, werrors.ErrInvalidDuration) {
		t.Errorf("Parse(\"30s\", false) error = %v, want ErrInvalidDuration", err)
	}

	// ...but allowed for cooldown-style durations
	got, err := Parse("30s", true)
	if err != nil {
		t.Fatalf("Parse(\"30s\", true) returned error: %v", err)
	}
	if got != 30*time.Second {
		t.Errorf("Parse(\"30s\", true) = %v, want %v", got, 30*time.Second)
	}

	// Exactly one minute is fine either way
	if _, err := Parse("60s", false); err != nil {
		t.Errorf("Parse(\"60s\", false) returned error: %v", err)
	}
	if _, err := Parse("1m", false); err != nil {
		t.Errorf("Parse(\"1m\", false) returned error: %v", err)
	}
}

func TestParseErrorCarriesToken(t *testing.T) {
	_, err := Parse("bogus", false)
	if err == nil {
		t.Fatal("Parse(\"bogus\") should fail")
	}

	var invalid *werrors.InvalidDurationError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *InvalidDurationError", err)
	}
	if invalid.Token != "bogus" {
		t.Errorf("Token = %v, want %v", invalid.Token, "bogus")
	}
}

func TestParseRoundTripSeconds(t *testing.T) {
	// parse(token) must equal n * unit seconds for every unit
	units := map[string]int64{
		"s": 1, "m": 60, "h": 3600, "d": 86400, "w": 604800, "y": 31536000,
	}

	for unit, secs := range units {
		t.Run(unit, func(t *testing.T) {
			got, err := Parse("90"+unit, true)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if int64(got.Seconds()) != 90*secs {
				t.Errorf("seconds = %v, want %v", int64(got.Seconds()), 90*secs)
			}
		})
	}
}
