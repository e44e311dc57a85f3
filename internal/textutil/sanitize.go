package textutil

import "strings"

// forbiddenReplacer rewrites the nine characters Windows refuses in file and
// directory names with underscores.
var forbiddenReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// reservedDeviceNames are filenames reserved by Windows for device access.
// The comparison is case-sensitive: "con" is an ordinary name, "CON" is not.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// SanitizeSegment converts an arbitrary tag value into a single safe path
// segment. Forbidden characters become underscores, ASCII control codes are
// removed, and a reserved device name in the pre-extension position is
// replaced at its first textual occurrence. No trimming, case folding, or
// length limiting is applied; an empty input stays empty.
func SanitizeSegment(value string) string {
	out := forbiddenReplacer.Replace(value)
	out = strings.Map(dropControl, out)

	// The part before the first dot is what the filesystem would treat as
	// the device name.
	prefix, _, _ := strings.Cut(out, ".")
	if _, reserved := reservedDeviceNames[prefix]; reserved {
		out = strings.Replace(out, prefix, "_", 1)
	}
	return out
}

func dropControl(r rune) rune {
	if r <= 0x1f {
		return -1
	}
	return r
}
