// Package pages serves the pages that do not talk to the auth API: home,
// the route inspector and the 404 page.
package pages
