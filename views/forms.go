package views

import (
	"context"

	"github.com/a-h/templ"
)

// Form ids, used as patch targets when a submission fails.
const (
	SignUpFormID         = "sign-up-form"
	SignInFormID         = "sign-in-form"
	ChangePasswordFormID = "change-password-form"
)

type field struct {
	name, label, kind, placeholder string
}

// form renders a Bootstrap form that submits through Datastar when it is
// available and as a plain POST otherwise. Inputs always start empty.
func form(id, action, submit string, fields ...field) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<form id="`)
		h.text(id)
		h.raw(`" method="post" action="`)
		h.text(action)
		h.raw(`" data-on:submit__prevent="@post('`)
		h.text(action)
		h.raw(`', {contentType: 'form'})">`)
		for _, f := range fields {
			h.raw(`<div class="mb-3"><label class="form-label" for="`)
			h.text(id + "-" + f.name)
			h.raw(`">`)
			h.text(f.label)
			h.raw(`</label><input class="form-control" required id="`)
			h.text(id + "-" + f.name)
			h.raw(`" name="`)
			h.text(f.name)
			h.raw(`" type="`)
			h.text(f.kind)
			h.raw(`" placeholder="`)
			h.text(f.placeholder)
			h.raw(`"></div>`)
		}
		h.raw(`<button type="submit" class="btn btn-primary">`)
		h.text(submit)
		h.raw(`</button></form>`)
	})
}

func SignUpForm() templ.Component {
	return form(SignUpFormID, "/sign-up", "Submit",
		field{"email", "Email address", "email", "Enter email"},
		field{"password", "Password", "password", "Password"},
		field{"password_confirmation", "Password Confirmation", "password", "Confirm Password"},
	)
}

func SignInForm() templ.Component {
	return form(SignInFormID, "/sign-in", "Submit",
		field{"email", "Email address", "email", "Enter email"},
		field{"password", "Password", "password", "Password"},
	)
}

func ChangePasswordForm() templ.Component {
	return form(ChangePasswordFormID, "/change-password", "Submit",
		field{"old", "Old password", "password", "Old Password"},
		field{"new", "New Password", "password", "New Password"},
	)
}
