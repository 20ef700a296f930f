// Package messages holds the copy of the application's alerts in several
// languages.
//
// The catalog is YAML embedded in the binary:
//
//	en:
//	  sign_up_failure:
//	    heading: "Sign Up Failed with error: %{error}"
//	    body: Registration failed.
//
// Placeholders of the form %{name} are filled from name/value pairs passed to
// Get. The request language is negotiated with golang.org/x/text/language by
// Middleware and read back with LanguageFromContext. English is always the
// fallback.
package messages
