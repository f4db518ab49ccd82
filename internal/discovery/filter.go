package discovery

// reservedHandles are Instagram platform paths that regex extraction
// picks up as false positives.
var reservedHandles = map[string]bool{
	"explore":   true,
	"reels":     true,
	"reel":      true,
	"accounts":  true,
	"login":     true,
	"signup":    true,
	"about":     true,
	"developer": true,
	"directory": true,
	"legal":     true,
	"stories":   true,
	"p":         true,
	"tv":        true,
	"web":       true,
	"api":       true,
	"privacy":   true,
	"terms":     true,
}

// ValidHandle rejects platform reserved words, handles outside the
// 2–30 character range, and any character outside [a-z0-9_.].
func ValidHandle(handle string) bool {
	if len(handle) < 2 || len(handle) > 30 {
		return false
	}
	if reservedHandles[handle] {
		return false
	}
	for _, r := range handle {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
