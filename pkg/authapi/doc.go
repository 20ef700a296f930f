// Package authapi is the client for the movie catalog's account API.
//
// Sign-up, sign-in, sign-out and change-password are JSON calls against
// API_BASE_URL. Authenticated calls carry the user's token through an
// oauth2 static token source. Outgoing requests are throttled with a token
// bucket and forward the caller's X-Request-ID.
//
// Any non-2xx answer becomes an *APIError whose message reads
// "request failed with status code N".
package authapi
