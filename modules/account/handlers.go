package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/authapi"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/sanitizer"
	"github.com/springmovies/webclient/pkg/session"
	"github.com/springmovies/webclient/pkg/validator"
	"github.com/springmovies/webclient/views"
)

const maxEmailLength = 254

type SignUpRequest struct {
	Email                string `form:"email"`
	Password             string `form:"password"`
	PasswordConfirmation string `form:"password_confirmation"`
}

func (r SignUpRequest) validate() error {
	return validator.Apply(
		validator.Required("email", r.Email),
		validator.ValidEmail("email", r.Email),
		validator.MaxLen("email", r.Email, maxEmailLength),
		validator.Required("password", r.Password),
		validator.Matches("password_confirmation", r.PasswordConfirmation, r.Password),
	)
}

// signUp registers the account and then signs it in with the same
// credentials.
func (s *Service) signUp(ctx app.Context, req SignUpRequest) handler.Response {
	if !isSubmit(ctx) {
		return formPage(ctx, views.SignUpForm(), views.SignUpPage, views.SignUpFormID, http.StatusOK)
	}
	st := ctx.State()

	req.Email = sanitizer.NormalizeEmail(req.Email)
	fail := func(err error) handler.Response {
		s.logFailure(ctx, "sign_up", req.Email, err)
		st.Notify(messages.SignUpFailure, alert.Danger, "error", describeError(err))
		return formPage(ctx, views.SignUpForm(), views.SignUpPage, views.SignUpFormID, http.StatusUnprocessableEntity)
	}

	if err := req.validate(); err != nil {
		return fail(err)
	}
	creds := authapi.Credentials{
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}
	if _, err := s.api.SignUp(ctx, creds); err != nil {
		return fail(err)
	}
	user, err := s.api.SignIn(ctx, creds)
	if err != nil {
		return fail(err)
	}
	if err := st.SetUser(ctx, sessionUser(user)); err != nil {
		return handler.Error(err)
	}

	st.Notify(messages.SignUpSuccess, alert.Success)
	return handler.Redirect("/")
}

type SignInRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (r SignInRequest) validate() error {
	return validator.Apply(
		validator.Required("email", r.Email),
		validator.ValidEmail("email", r.Email),
		validator.Required("password", r.Password),
	)
}

func (s *Service) signIn(ctx app.Context, req SignInRequest) handler.Response {
	if !isSubmit(ctx) {
		return formPage(ctx, views.SignInForm(), views.SignInPage, views.SignInFormID, http.StatusOK)
	}
	st := ctx.State()

	req.Email = sanitizer.NormalizeEmail(req.Email)
	fail := func(err error) handler.Response {
		s.logFailure(ctx, "sign_in", req.Email, err)
		st.Notify(messages.SignInFailure, alert.Danger, "error", describeError(err))
		return formPage(ctx, views.SignInForm(), views.SignInPage, views.SignInFormID, http.StatusUnprocessableEntity)
	}

	if err := req.validate(); err != nil {
		return fail(err)
	}
	user, err := s.api.SignIn(ctx, authapi.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return fail(err)
	}
	if err := st.SetUser(ctx, sessionUser(user)); err != nil {
		return handler.Error(err)
	}

	st.Notify(messages.SignInSuccess, alert.Success)
	return handler.Redirect("/")
}

// signOut always reports success. A failed API call only means the token
// stays valid upstream until it expires, so it is logged and ignored.
func (s *Service) signOut(ctx app.Context, _ struct{}) handler.Response {
	st := ctx.State()
	if user := st.User(); user != nil {
		if err := s.api.SignOut(ctx, user.Token); err != nil {
			s.log.WarnContext(ctx, "remote sign-out failed",
				logger.Component("account"),
				logger.UserID(user.ID),
				logger.StatusCode(authapi.StatusCode(err)),
				logger.Error(err),
			)
		}
	}

	st.Notify(messages.SignOutSuccess, alert.Success)
	if err := st.ClearUser(ctx); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect("/")
}

type ChangePasswordRequest struct {
	Old string `form:"old"`
	New string `form:"new"`
}

func (r ChangePasswordRequest) validate() error {
	return validator.Apply(
		validator.Required("old", r.Old),
		validator.Required("new", r.New),
		validator.Differs("new", r.New, r.Old),
	)
}

func (s *Service) changePassword(ctx app.Context, req ChangePasswordRequest) handler.Response {
	if !isSubmit(ctx) {
		return formPage(ctx, views.ChangePasswordForm(), views.ChangePasswordPage, views.ChangePasswordFormID, http.StatusOK)
	}
	st := ctx.State()

	fail := func(err error) handler.Response {
		s.logFailure(ctx, "change_password", "", err)
		st.Notify(messages.ChangePasswordFailure, alert.Danger, "error", describeError(err))
		return formPage(ctx, views.ChangePasswordForm(), views.ChangePasswordPage, views.ChangePasswordFormID, http.StatusUnprocessableEntity)
	}

	if err := req.validate(); err != nil {
		return fail(err)
	}
	user := st.User()
	if user == nil {
		return handler.Redirect("/")
	}
	if err := s.api.ChangePassword(ctx, user.Token, authapi.Passwords{Old: req.Old, New: req.New}); err != nil {
		return fail(err)
	}

	st.Notify(messages.ChangePasswordSuccess, alert.Success)
	return handler.Redirect("/")
}

// formPage renders an empty form: the whole page for plain requests, only
// the form for Datastar ones.
func formPage(ctx app.Context, form templ.Component, page func(views.Page) templ.Component, formID string, status int) handler.Response {
	return handler.TemplPartialWithStatus(status,
		form,
		page(views.NewPage(ctx.State())),
		handler.WithTarget("#"+formID),
	)
}

// describeError is the text of err shown in alert headings. Transport
// details such as API URLs stay in the log.
func describeError(err error) string {
	var apiErr *authapi.APIError
	var msg string
	switch {
	case errors.As(err, &apiErr):
		msg = apiErr.Error()
	case validator.IsValidationError(err):
		msg = validator.ExtractValidationErrors(err).Error()
	case errors.Is(err, authapi.ErrTransport), errors.Is(err, authapi.ErrRateLimited):
		msg = "Network Error"
	case errors.Is(err, authapi.ErrDecode):
		msg = "invalid response from server"
	default:
		msg = "unexpected error"
	}
	return sanitizer.SingleLine(msg)
}

func sessionUser(u authapi.User) session.User {
	return session.User{ID: u.ID, Email: u.Email, Token: u.Token}
}

func (s *Service) logFailure(ctx app.Context, op, email string, err error) {
	attrs := []any{
		logger.Component("account"),
		logger.Event(op),
		logger.StatusCode(authapi.StatusCode(err)),
		logger.Error(err),
	}
	if email != "" {
		attrs = append(attrs, slog.String("email", sanitizer.MaskEmail(email)))
	}
	s.log.InfoContext(ctx, "account operation failed", attrs...)
}
