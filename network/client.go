// Package network provides the pre-configured HTTP client shared by outbound requests.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client for the application's only network
// surface, the release update check. A bounded timeout keeps a slow or
// unreachable GitHub API from stalling the CLI.
var Client = &http.Client{
	Timeout: 15 * time.Second,
}
