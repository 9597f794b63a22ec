// Package httpapi is the HTTP face of the mock backend.
//
// Every request except the health and metrics endpoints is handed to a
// router.Registry: the JSON body is decoded into a record, the first value
// of each query parameter is collected, and the handler result is written
// back as JSON with status 200. Failures are written as
//
//	{"error": {"category": ..., "text_code": ..., "message": ..., ...}}
//
// with 400 for caller errors, 404 for unknown routes or records, and 500
// otherwise. CORS headers are set on every response and OPTIONS requests
// are answered directly.
//
// At most Config.MaxConcurrent requests are dispatched at once; the rest
// wait for a slot.
package httpapi
