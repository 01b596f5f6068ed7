package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const bookingIDChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateBookingID builds the human-readable booking reference quoted back
// to customers: "SY" plus the low six digits of the unix-millisecond clock
// plus three random characters. taken reports whether a candidate is already
// in use in the active store; generation retries until a free one comes up.
func GenerateBookingID(taken func(string) bool) string {
	for {
		millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
		id := fmt.Sprintf("SY%s%s", millis[len(millis)-6:], randomSuffix(3))
		if taken == nil || !taken(id) {
			return id
		}
	}
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = bookingIDChars[rand.Intn(len(bookingIDChars))]
	}
	return string(b)
}
