// Package account serves the account pages: sign-up, sign-in, sign-out and
// change-password. Every operation is delegated to the remote auth API; the
// outcome is reported to the visitor as an alert.
//
// Failed submissions re-render an empty form and enqueue a danger alert
// whose heading carries the error. Successful ones update the session user
// where needed, enqueue a success alert and redirect home. Sign-out always
// succeeds locally.
package account
