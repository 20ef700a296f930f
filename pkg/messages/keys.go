package messages

// Key names an alert in the catalog.
type Key string

const (
	SignUpSuccess         Key = "sign_up_success"
	SignUpFailure         Key = "sign_up_failure"
	SignInSuccess         Key = "sign_in_success"
	SignInFailure         Key = "sign_in_failure"
	SignOutSuccess        Key = "sign_out_success"
	ChangePasswordSuccess Key = "change_password_success"
	ChangePasswordFailure Key = "change_password_failure"
)

// Keys lists every key the bundled catalog must define.
var Keys = []Key{
	SignUpSuccess,
	SignUpFailure,
	SignInSuccess,
	SignInFailure,
	SignOutSuccess,
	ChangePasswordSuccess,
	ChangePasswordFailure,
}
