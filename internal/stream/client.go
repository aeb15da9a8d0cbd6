// Package stream implements the client side of the process sensor stream:
// opening the long-lived SSE connection and decoding its events into samples.
package stream

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vatwatch/vatwatch/internal/errors"
	"github.com/vatwatch/vatwatch/internal/logger"
)

// connectTimeout bounds how long we wait for the server to start responding.
// The body itself streams indefinitely, so there is no overall request timeout.
const connectTimeout = 10 * time.Second

// URL builds the stream endpoint for the given host and port.
func URL(host, port string) string {
	return fmt.Sprintf("http://%s:%s/stream", host, port)
}

// Client opens streaming connections against a sensor stream endpoint.
// One Client can open many streams over its lifetime; each Open returns a
// fresh connection and no connection is reused across settings changes.
type Client struct {
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates a stream client with sane connect timeouts.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: connectTimeout,
			},
		},
		log: logger.NewEnvLogger("[stream]"),
	}
}

// SetLogger overrides the client's logger. Streams opened afterwards
// inherit it. Used by tests.
func (c *Client) SetLogger(l logger.Logger) {
	c.log = l
}

// Open establishes a streaming GET against http://{host}:{port}/stream and
// returns the live stream. A failed attempt surfaces a connection error;
// there is no retry or backoff, the caller decides whether to try again.
func (c *Client) Open(ctx context.Context, host, port string) (*Stream, error) {
	if host == "" || port == "" {
		return nil, errors.New(errors.ErrConfig,
			"Host and port are required",
			"Set them in the connection settings or with --host and --port")
	}

	url := URL(host, port)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConnect,
			"Invalid stream URL: "+url,
			"Check the host and port values")
	}
	req.Header.Set("Accept", "text/event-stream")

	c.log.Debug("connecting to %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConnect,
			"Can't connect to "+url,
			"Check that the sensor server is running and the host/port are correct")
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.New(errors.ErrConnect,
			fmt.Sprintf("Stream endpoint returned %s", resp.Status),
			"Check that "+url+" is a server-sent-events endpoint")
	}

	c.log.Debug("connected to %s", url)

	return newStream(url, resp.Body, c.log), nil
}
