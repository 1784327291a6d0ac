//go:build gcloud

package config

import "errors"

// Validate requires a Pub/Sub project; reminder events always leave through
// Google Cloud in this build.
func (c *PubSubConfig) Validate() error {
	if c.GCloudProjectID == "" {
		return errors.New("GCLOUD_PROJECT_ID is required for event publishing")
	}

	return nil
}
