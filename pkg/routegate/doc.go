// Package routegate keeps anonymous visitors out of pages that need a
// signed-in user.
//
// Routes are declared in a static Table. Each entry says whether it needs a
// user; Mount registers the table on a chi router and wraps protected
// entries in Gate, which redirects to "/" (over SSE for Datastar requests)
// when Allow refuses.
package routegate
