package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// EmailDomain returns the part of the address after the last '@', or an
// empty string when there is none.
func EmailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return ""
	}
	return email[i+1:]
}

// EmailMD5 returns the lowercase hex MD5 digest of the full address.
func EmailMD5(email string) string {
	sum := md5.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}
