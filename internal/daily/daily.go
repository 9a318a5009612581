// internal/daily/daily.go
//
// Date-seeded secret selection. Everyone playing with the same candidate
// list and salt on the same UTC day gets the same secret word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker picks the same index for every call on one UTC day.
// It satisfies game.Picker.
type Picker struct {
	Date time.Time
	Salt string
}

// IntN maps the picker's day into [0, n). It returns 0 when n <= 0.
func (p Picker) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.seed() % uint64(n))
}

// seed is the leading 64 bits of HMAC-SHA256 keyed by Salt over DateKey(Date).
func (p Picker) seed() uint64 {
	mac := hmac.New(sha256.New, []byte(p.Salt))
	mac.Write([]byte(DateKey(p.Date)))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}
