// Package binder fills request structs from forms, query strings and route
// parameters. Each binder reads only the fields carrying its own struct tag
// (form, query, path), so several binders can be applied to one struct:
//
//	type ChangePasswordRequest struct {
//		Old  string `form:"old"`
//		New  string `form:"new"`
//		Next string `query:"next"`
//	}
//
// Form returns ErrBinderNotApplicable for GET and HEAD requests; the handler
// package skips binders that report it.
package binder
