//go:build !gcloud

package config

import (
	"fmt"
	"net/url"
)

// Validate accepts an empty NATS_URL, which disables event publishing.
func (c *PubSubConfig) Validate() error {
	if c.NatsURL == "" {
		return nil
	}

	u, err := url.Parse(c.NatsURL)
	if err != nil {
		return fmt.Errorf("invalid NATS_URL: %w", err)
	}

	if u.Scheme != "nats" && u.Scheme != "tls" {
		return fmt.Errorf("invalid NATS_URL: unsupported scheme %q", u.Scheme)
	}

	return nil
}
