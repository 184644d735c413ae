package logic

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// character classes a generated password draws from; the special set
// matches what the platform accepts unescaped in login QR payloads
var passwordClasses = []string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
	"!@*(§",
}

// GeneratePassword - produces a password of the given length where each
// position is drawn from a uniformly chosen character class; these are
// real account credentials, so only crypto/rand is used
func GeneratePassword(length int) (string, error) {
	password := make([]rune, 0, length)
	for i := 0; i < length; i++ {
		class, err := randInt(len(passwordClasses))
		if err != nil {
			return "", errors.Wrap(err, "reading random source")
		}
		chars := []rune(passwordClasses[class])
		pos, err := randInt(len(chars))
		if err != nil {
			return "", errors.Wrap(err, "reading random source")
		}
		password = append(password, chars[pos])
	}
	return string(password), nil
}

func randInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
