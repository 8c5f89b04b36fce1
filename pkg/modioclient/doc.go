// Package modioclient provides the primary entry point for constructing
// a mod.io REST API client that implements the modio.Client interface.
//
// It layers configuration, HTTP transport, authentication, and rate-limit
// back-pressure on top of the resource interfaces and types defined in the
// modio package. Most applications should import modioclient to build a
// client, then use the returned modio.Client to access resource-specific
// clients, for example Games(), Mods(), Files(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/modio-client/pkg/modio"
//	  "github.com/fivetwenty-io/modio-client/pkg/modioclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key (read access).
//	  cli, err := modioclient.NewWithAPIKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = modioclient.New(&modio.Config{
//	    APIKey:      "your-api-key",
//	    AccessToken: "eyJ0eXAiOi...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the modio.Client interface
//	  mods, err := cli.Mods().List(ctx, 51, modio.NewFilter().Limit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = mods
//	}
//
// # Write access
//
// Writes require a bearer token. Obtain one interactively through the
// email flow: Auth().EmailRequest sends a five-digit security code to the
// address, and Auth().EmailExchange trades the code for a token that is
// installed on the client for subsequent requests.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey,
// NewWithToken, and NewTestEnvironment that wrap New with the appropriate
// configuration.
package modioclient
