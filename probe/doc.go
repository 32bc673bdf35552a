// Package probe provides a client that checks a running tweeter server.
//
// It fetches request paths and reports the status code, Content-Type and
// body size of each response. Verify compares a live server against a local
// route table, byte for byte, including the not-found fallback.
//
// # Basic Usage
//
//	client, err := probe.New(&probe.Config{Endpoint: "http://localhost:3000"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Check(ctx, []string{"/", "/style.css", "/missing"})
//
// # Verifying a Deployment
//
//	table, err := tweeter.NewDefaultRouteTable(ctx, storage)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	verifications, err := client.Verify(ctx, table)
//	for _, v := range verifications {
//		if !v.OK() {
//			fmt.Println(v.Path, v.Mismatches)
//		}
//	}
//
// # Output Formatting
//
// Results can be printed for humans or as JSON:
//
//	formatter := probe.NewFormatter(jsonOutput, quiet)
//	formatter.FormatCheck(os.Stdout, results)
package probe
