// Package router maps (pattern, method) pairs to handlers and dispatches
// transport-neutral requests to them.
//
// Patterns are slash-delimited; a segment written as {name} binds the
// corresponding path segment. Matching is exact on segment count and on every
// literal segment, with no wildcards or prefixes:
//
//	Match("/api/clients/{id}", "/api/clients/123") // true, {id: "123"}
//	Match("/api/clients", "/api/clients/extra")    // false
//
// A Registry is filled once at startup from the route tables each service
// returns, then shared by every request goroutine. Before a handler runs the
// registry assembles its arguments: path bindings, the request body as data
// for POST and PATCH, and the id list for batch deletes. A missing argument
// fails the dispatch before the handler sees it.
package router
