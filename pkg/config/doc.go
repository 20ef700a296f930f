// Package config loads typed configuration from the environment.
//
// Every package in the web client owns a small `env`-tagged struct (HTTP_*,
// COOKIE_*, SESSION_*, REDIS_*, API_*, ALERT_*). Load parses one with
// github.com/caarlos0/env/v11 after seeding the environment from an optional
// .env file through github.com/joho/godotenv. Parsed structs are cached per
// type, so calling Load from several places is cheap.
//
// Tests that change the environment call Reset between cases.
package config
