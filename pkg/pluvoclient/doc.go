// Package pluvoclient provides the primary entry point for constructing a
// Pluvo API client that implements the pluvo.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the pluvo package. Most
// applications should import pluvoclient to build a client, then use the
// returned pluvo.Client to access resource-specific clients, for example
// Courses() and Users().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/wendbv/pluvo-go/pkg/pluvo"
//	  "github.com/wendbv/pluvo-go/pkg/pluvoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With client credentials; a bearer token is obtained from the token
//	  // endpoint and refreshed transparently.
//	  cli, err := pluvoclient.New(ctx, &pluvo.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = pluvoclient.New(ctx, &pluvo.Config{Token: "eyJhbGciOi..."})
//
//	  // Or without credentials; restricted endpoints return the server's
//	  // 403 error.
//	  cli, err = pluvoclient.New(ctx, &pluvo.Config{APIURL: pluvo.DefaultAPIURL})
//	  if err != nil { log.Fatal(err) }
//
//	  courses, err := cli.Courses().List(ctx, pluvo.NewListParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = courses
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewWithClientCredentials, and NewUnauthenticated that wrap New with the
// appropriate configuration.
package pluvoclient
