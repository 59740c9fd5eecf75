package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// ForDate picks the word for t's UTC calendar day. The pick depends only on the
// day, list and salt, so players sharing a list and salt get the same word.
func ForDate(list []string, t time.Time, salt string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	mac := hmac.New(sha256.New, []byte(salt))
	io.WriteString(mac, t.UTC().Format(time.DateOnly))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return list[seed%uint64(len(list))], nil
}
