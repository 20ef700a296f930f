// Package httpserver runs the web client's net/http server.
//
// Server listens on Config.Addr (or a supplied listener), serves until the
// run context is cancelled or the process receives SIGINT/SIGTERM, and then
// drains connections within Config.ShutdownTimeout. Shutdown hooks run first
// so open alert streams can end their responses.
//
// HealthCheckHandler serves /health/live and /health/ready.
package httpserver
