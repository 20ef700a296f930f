// Package views renders the application's HTML as templ components.
//
// Pages are composed from Layout, which carries the navigation header and
// the alert container. Alerts are rendered by AlertItem both in the initial
// page and in the patches sent over the alert stream, so the two always
// agree.
package views
