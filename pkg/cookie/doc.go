// Package cookie manages plain, signed and encrypted HTTP cookies.
//
// Each configured secret is expanded with HKDF-SHA256 into an HMAC key and an
// AES-256-GCM key, so the raw secret is never used directly. The first secret
// writes cookies; all secrets are accepted when reading, which allows
// rotating COOKIE_SECRETS without signing every user out.
//
// The session package stores its token in an encrypted cookie.
package cookie
