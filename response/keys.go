package response

import (
	"regexp"
	"strings"
)

var (
	allUpper      = regexp.MustCompile(`^[A-Z]+$`)
	acronymBefore = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	lowerUpper    = regexp.MustCompile(`([a-z])([A-Z])`)
)

// NormalizeKey converts a service field name into its attribute name:
// "ip_corporateProxy" becomes "ip_corporate_proxy", "maxmindID" becomes
// "maxmind_id" and an all-caps key such as "ERR" is simply lower-cased.
func NormalizeKey(key string) string {
	if allUpper.MatchString(key) {
		return strings.ToLower(key)
	}
	key = acronymBefore.ReplaceAllString(key, "${1}_${2}")
	key = lowerUpper.ReplaceAllString(key, "${1}_${2}")
	return strings.ToLower(key)
}
