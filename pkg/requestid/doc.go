// Package requestid correlates a browser request with the log records and
// upstream API calls it produces.
//
// Middleware assigns the ID, FromContext reads it, LoggerExtractor feeds it
// to the logger and Transport forwards it to the auth API.
package requestid
