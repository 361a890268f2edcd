// Package eventapi is a small GraphQL client for the Eventify API.
//
// Client.Do posts a document and decodes the data member; typed methods
// cover every user and event operation the application needs:
//
//	client, err := eventapi.New("http://localhost:4000/graphql", eventapi.WithRetries(2, nil))
//	ctx = eventapi.WithToken(ctx, token)
//	events, err := client.MyEvents(ctx)
//
// Server-side GraphQL errors surface as *GraphQLError whose PublicMessage is
// safe to show to users. Queries can be retried on transient failures with
// WithRetries; mutations are sent once.
//
// Authenticator adapts the client to the auth package.
package eventapi
