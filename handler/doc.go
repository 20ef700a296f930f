// Package handler turns typed handler functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// (see pkg/binder) and returns a Response:
//
//	type SignInRequest struct {
//		Email    string `form:"email"`
//		Password string `form:"password"`
//	}
//
//	func signIn(ctx handler.Context, req SignInRequest) handler.Response {
//		...
//		return handler.Redirect("/")
//	}
//
//	r.Post("/sign-in", handler.Wrap(signIn,
//		handler.WithBinders[handler.Context, SignInRequest](binder.Form()),
//	))
//
// Every response adapts to Datastar. Templ patches a component over SSE when
// the request came from Datastar and writes plain HTML otherwise. Redirect
// uses a client-side redirect over SSE, and SSE keeps a stream open for
// server pushes.
//
// Errors from binders or responses go to the ErrorHandler. NewErrorHandler
// classifies them (HTTPError, ValidationError), logs them and renders an
// error page or a toast.
package handler
