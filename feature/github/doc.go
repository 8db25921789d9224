// Package github is the remote collaborator: it fetches the current
// follower list for an account from the GitHub REST API.
//
// The Fetcher interface decouples the tracker core from pagination, auth
// and rate limiting; a mock implementation is selectable via config for
// offline use. The API client paginates /users/{username}/followers,
// rate-limits itself client-side, and maps 404/401/403 to actionable
// error messages.
package github
