// Package sanitizer cleans user input before it is validated or sent
// upstream, and masks personal data before it is logged.
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
//	email := sanitizer.NormalizeEmail(form.Email)
//	log.Info("sign in", slog.String("email", sanitizer.MaskEmail(email)))
package sanitizer
