// Package tweeter serves the Tweeter demo page from an immutable route table.
//
// The route table maps exact request paths to resources that are read once
// at startup. Lookups never touch the disk, never fail and never mutate the
// table, so a single *RouteTable is shared by every request goroutine.
//
// # Key Components
//
//   - Resource: a file name, its Content-Type and the request paths it answers
//   - RouteTable: exact-match lookup with a not-found fallback
//   - ResourceStorage: interface for reading resource bytes (see the
//     filesystem package for directory and fs.FS backends)
//
// # Routing Rules
//
// Paths are compared byte for byte. There is no prefix matching, no case
// folding and no slash normalisation:
//
//	/, /index.html   index.html, 200, text/html
//	/style.css       style.css, 200, text/css
//	/index.js        index.js, 200, application/javascript
//	/404.html        404.html, 200, text/html
//	anything else    404.html, 404, text/html
//
// Requesting the not-found page by name is not an error and answers 200.
//
// # Example Usage
//
//	root, err := os.OpenRoot("./public")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := tweeter.NewDefaultRouteTable(ctx, filesystem.NewFileStorage(root))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry := table.Resolve("/style.css")
//
// See the http package for the HTTP handler built on top of the table.
package tweeter
