package deviceapi

import "strings"

// ExtractParam pulls the value of name out of a device parameter string
// of the form "user=ana address=192.168.1.101 uptime=10:30". Returns
// ("", false) when the parameter is absent or empty.
func ExtractParam(raw, name string) (string, bool) {
	for _, field := range strings.Fields(raw) {
		if v, ok := strings.CutPrefix(field, name+"="); ok {
			if v == "" {
				return "", false
			}
			return v, true
		}
	}
	return "", false
}
