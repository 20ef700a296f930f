package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie: COOKIE_SECRETS is empty")
	ErrSecretTooShort   = errors.New("cookie: secret shorter than 32 bytes")
	ErrInvalidSignature = errors.New("cookie: signature does not match any key")
	ErrDecryptionFailed = errors.New("cookie: cannot decrypt with any key")
	ErrNotFound         = errors.New("cookie: not present on request")
	ErrInvalidFormat    = errors.New("cookie: malformed value")
)
