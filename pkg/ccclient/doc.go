// Package ccclient provides the primary entry point for constructing a
// Clever Cloud API client that implements the clevercloud.Client interface.
//
// It layers configuration, HTTP transport and request signing on top of the
// resource interfaces and types defined in the clevercloud package. Most
// applications should import ccclient to build a client, then use the
// returned clevercloud.Client to access resource-specific clients, for
// example Self(), Addons(), Functions(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/clevercloud/pkg/ccclient"
//	  "github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // OAuth1 user tokens, signed with the built-in consumer key. This is
//	  // the scheme the console hands out.
//	  cli, err := ccclient.NewWithOAuth1("token", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full control over the configuration:
//	  cli, err = ccclient.New(&clevercloud.Config{
//	    Credentials: clevercloud.NewOAuth1Credentials("token", "secret"),
//	    // alternatively:
//	    // Credentials: clevercloud.NewBasicCredentials("user", "pass"),
//	    // Credentials: clevercloud.NewBearerCredentials("api-token"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the clevercloud.Client interface
//	  self, err := cli.Self().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = self
//	}
//
// # Endpoints
//
// When Config.Endpoint is empty the client picks the endpoint implied by the
// credentials: bearer tokens go through the API bridge at
// https://api-bridge.clever-cloud.com, every other scheme goes to the public
// API at https://api.clever-cloud.com. An explicit Config.Endpoint always
// wins; a missing scheme defaults to https.
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithOAuth1, NewWithBasic, and NewWithBearer that wrap New with the
// appropriate configuration.
package ccclient
