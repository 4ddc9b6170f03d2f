// Package github provides authenticated GitHub API clients.
package github

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v68/github"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// requestTimeout bounds every API call. No retries: a failed call is
// reported and treated as "not found" by the callers.
const requestTimeout = 10 * time.Second

// Options configures client construction. Either Token or the full set of
// App credentials must be provided; App credentials win when both are set.
type Options struct {
	Token string

	AppID          int64
	InstallationID int64
	PrivateKeyPEM  string

	// Instrument wraps the transport with otelhttp so outbound calls
	// produce spans when telemetry is enabled.
	Instrument bool
}

// NewClient creates a GitHub API client. With App credentials the
// ghinstallation transport handles JWT generation and token refresh;
// otherwise the personal access token is used directly.
func NewClient(opts Options) (*gogithub.Client, error) {
	transport := http.DefaultTransport

	appAuth := opts.AppID != 0 && opts.InstallationID != 0 && opts.PrivateKeyPEM != ""
	if appAuth {
		installation, err := ghinstallation.New(transport, opts.AppID, opts.InstallationID, []byte(opts.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("creating github installation transport: %w", err)
		}
		transport = installation
	}

	if opts.Instrument {
		transport = otelhttp.NewTransport(transport)
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}

	client := gogithub.NewClient(httpClient)
	if !appAuth {
		if opts.Token == "" {
			return nil, fmt.Errorf("github token or app credentials required")
		}
		client = client.WithAuthToken(opts.Token)
	}
	return client, nil
}
