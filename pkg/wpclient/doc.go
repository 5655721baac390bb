// Package wpclient provides the primary entry point for constructing a
// WordPress REST API client that implements the wpapi.Client interface.
//
// It layers configuration validation, authentication selection, and the
// retrying HTTP pipeline on top of the types defined in the wpapi package.
// Most applications should import wpclient to build a client, then use the
// returned wpapi.Client to access collections, for example Posts(),
// Users(), Categories(), or an arbitrary endpoint via Resource(path).
//
// Quick start
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
//	  // Basic authentication (development setups).
//	  cli, err := wpclient.NewWithBasicAuth("https://example.com/wp-json", "admin", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or OAuth1 token credentials:
//	  cli, err = wpclient.NewWithToken("https://example.com/wp-json",
//	    "client-key", "client-secret", "access-token", "access-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.Posts().List(context.Background(), nil)
//	  if err != nil { log.Fatal(err) }
//	  log.Printf("%d posts", res.Page().Total)
//	}
package wpclient
