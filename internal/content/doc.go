// Package content defines the portfolio content kinds stored in the hosted
// bucket and the client the dashboard uses to read and mutate them.
//
// The bucket is the only authoritative store. Records decoded here are
// request-scoped snapshots: every page view fetches them again.
package content
