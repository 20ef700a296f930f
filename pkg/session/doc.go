// Package session keeps the browser's server-side session.
//
// A session is created for every visitor so transient alerts have an owner
// before anyone signs in. Its ID never changes; the opaque token stored in
// the encrypted cookie is rotated on sign-in and sign-out. The signed-in
// User carries the bearer token issued by the auth API.
//
// Sessions live in a MemoryStore by default or in Redis through RedisStore
// when several instances serve the same users.
package session
