// Package wpapi defines the public types and interfaces for the WordPress
// REST API client: the Client and ResourceClient interfaces, configuration,
// query parameters, classified errors, and the Result accessor.
//
// Most applications should import wpclient to construct a client:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/pressflow-io/wpapi/pkg/wpapi"
//	  "github.com/pressflow-io/wpapi/pkg/wpclient"
//	)
//
//	func example() {
//	  cli, err := wpclient.New(&wpapi.Config{
//	    Endpoint: "https://example.com/wp-json",
//	    Username: "admin",
//	    Password: "secret",
//	  })
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  res, err := cli.Posts().List(context.Background(), wpapi.NewListParams().WithPage(2))
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  log.Printf("%d posts total", res.Page().Total)
//	}
//
// Errors returned by operations wrap a *wpapi.Error carrying the classified
// kind, HTTP status, WordPress error code, and the method and URL of the
// failed request. Use errors.As or the predicate helpers (IsNotFound,
// IsRateLimited, ...) to inspect them.
package wpapi
