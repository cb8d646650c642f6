package cache

import "strings"

// KeyPrefix namespaces every key this service writes to Redis.
const KeyPrefix = "trivia"

// Key builds "trivia:<part>:<part>...". Empty parts are dropped so optional
// qualifiers can be passed unconditionally.
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, KeyPrefix)
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ":")
}
