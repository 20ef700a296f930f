package sanitizer

import "strings"

// NormalizeEmail trims the address and lowercases its domain. The local part
// is left as typed since the server may treat it case-sensitively.
func NormalizeEmail(email string) string {
	email = Trim(RemoveControlChars(email))
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	return local + "@" + strings.ToLower(domain)
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}
