// Package duration parses the compact duration tokens used by moderation
// commands ("30m", "7d") into time spans.
package duration

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/WardenLabs/WardenGo/pkg/errors"
)

// Seconds per unit letter. The unit is matched case-insensitively.
var unitSeconds = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
	'w': 604800,
	'y': 31536000,
}

// MinSanction is the shortest span a sanction duration may have.
const MinSanction = time.Minute

// Parse converts a token of the form <integer><unit> into a time span.
// Unit letters are s, m, h, d, w and y. Tokens below one minute are
// rejected unless allowAny is set; cooldown-style durations pass allowAny
// because they legitimately go below a minute.
func Parse(token string, allowAny bool) (time.Duration, error) {
	if len(token) < 2 {
		return 0, errors.NewInvalidDuration(token)
	}

	unit := strings.ToLower(token)[len(token)-1]
	secs, ok := unitSeconds[unit]
	if !ok {
		return 0, errors.NewInvalidDuration(token)
	}

	// ParseInt tolerates a sign prefix; the token grammar does not.
	num := token[:len(token)-1]
	if num[0] < '0' || num[0] > '9' {
		return 0, errors.NewInvalidDuration(token)
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidDuration(token)
	}
	if n > math.MaxInt64/(secs*int64(time.Second)) {
		return 0, errors.NewInvalidDuration(token)
	}

	span := time.Duration(n*secs) * time.Second
	if !allowAny && span < MinSanction {
		return 0, errors.NewInvalidDuration(token)
	}
	return span, nil
}
