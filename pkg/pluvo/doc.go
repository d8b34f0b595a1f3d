// Package pluvo provides types, interfaces, and helpers for working with the
// Pluvo REST API.
//
// # Overview
//
// The pluvo package defines the domain types (Course, User, Organisation) and
// the interfaces for resource-oriented clients (CoursesClient, UsersClient,
// OrganisationsClient, MediaClient). A concrete implementation is provided by
// the pluvoclient package, which wires configuration, transport, and
// authentication. Most consumers should import pluvoclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := pluvoclient.New(ctx, &pluvo.Config{Token: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  courses, err := cli.Courses().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = courses.Len() // total count, no further network calls
//	}
//
// # Pagination
//
// List operations return a Sequence, a lazy view over the paged listing. The
// first page is fetched eagerly, so Len reports the server's total count
// immediately; further pages are fetched transparently during iteration:
//
//	it := courses.Iterator()
//	for it.HasNext() {
//	  course, err := it.Next()
//	  if err != nil { break }
//	  _ = course
//	}
//
// or collect everything at once with courses.All().
//
// # Errors
//
// Failures from the API are represented by APIError, which carries the HTTP
// status code and the server's message. APIError unwraps to the general Error
// type, so a single errors.As check catches every failure raised by this
// library. Helpers such as IsNotFound, IsUnauthorized, and IsForbidden make it
// easy to branch on common cases.
package pluvo
