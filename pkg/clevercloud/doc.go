// Package clevercloud provides types, interfaces, and helpers for working
// with the Clever Cloud API.
//
// # Overview
//
// The clevercloud package defines the domain types (e.g., Myself, Addon,
// Zone, Function, Deployment) and the interfaces for resource-oriented
// clients (e.g., AddonsClient, DeploymentsClient). A concrete implementation
// of these clients is provided by the ccclient package, which wires
// configuration, transport and authentication. Most consumers should import
// ccclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
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
//	  cli, err := ccclient.New(&clevercloud.Config{
//	    Credentials: clevercloud.NewOAuth1Credentials("token", "secret"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := cli.Self().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// # Authentication
//
// Credentials is a closed union of the three supported schemes: OAuth1
// (requests signed individually with HMAC-SHA512), Basic and Bearer. Bearer
// credentials route requests through the API bridge by default. The union
// round-trips through JSON with the active scheme recovered from field
// presence.
//
// # Errors
//
// API errors are represented by APIError, which carries the status code and
// raw body of the failed exchange. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
// Workflow helpers wrap sentinel errors (e.g. ErrNoReadyDeployment,
// ErrDeploymentFailed) that callers test with errors.Is.
//
// # Functions and deployments
//
// Shipping code to a function is a multi-step workflow: create a deployment
// to obtain a one-time upload URL, upload the WebAssembly binary, trigger
// the deployment, then poll until it reaches Ready. DeploymentsClient
// exposes the individual steps alongside Deploy and WaitReady helpers that
// run the sequence and the poll loop.
package clevercloud
