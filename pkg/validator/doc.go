// Package validator builds declarative input checks.
//
// Each rule constructor returns a Rule: a Check function together with the
// error reported when it fails. Apply evaluates all rules and collects the
// failures into ValidationErrors, which implements error.
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.Matches("password_confirmation", req.PasswordConfirmation, req.Password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.Fields(), verrs.Get("email")
//	}
//
// The package is stateless and safe for concurrent use.
package validator
