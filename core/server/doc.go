// Package server holds the HTTP server configuration: listen port, the API
// key checked by the auth middleware and the request body cap.
package server
