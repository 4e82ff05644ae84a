// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a per-request id stored in the context and echoed in the
//     X-Ray-ID response header for log correlation.
package middleware
