// Package http serves a tweeter route table over HTTP.
//
// Every request, whatever its method or path, is answered from the table:
// the raw request target is resolved and the resulting entry is written
// with its status code and an exact Content-Type header. Unknown targets
// receive the not-found page with status 404.
//
// # Features
//
//   - chi router with panic recovery
//   - Structured request logging with per-request IDs
//   - Optional CORS support
//
// # Request Targets
//
// The lookup key is the request target as sent by the client, query string
// included. "/index.html?v=2" therefore misses the table and is answered
// with 404, and "/index%2Ehtml" is not decoded into "/index.html".
//
// # Usage
//
//	table, err := tweeter.NewDefaultRouteTable(ctx, storage)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handler := http.NewHandler(&http.HandlerConfig{}, table)
//	http.ListenAndServe(":3000", handler.Router())
//
// The table parameter must implement the Resolver interface; *tweeter.RouteTable
// does.
package http
