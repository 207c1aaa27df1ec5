// Package server exposes the compiler over HTTP.
//
// Routes:
//
//	POST /compile   document JSON in, text/html out
//	GET  /ws        websocket; each text message is a document, each
//	                reply is {"html": "..."} or {"error": "...", "code": "..."}
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus metrics, when enabled
//
// POST /compile accepts repeated attr query parameters ("key value") that
// are merged into the root element before rendering.
//
// Every compile runs inside an OpenTelemetry span named htmlc.compile. The
// tracer comes from the global provider unless WithTracerProvider is given.
package server
