// Package gcs implements the object store on a Google Cloud Storage
// bucket.
package gcs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Client wraps one GCS bucket as the artifact store.
type Client struct {
	client *storage.Client
	bucket *storage.BucketHandle
	// Deadline for a single Put. 0 means no deadline.
	putTimeout time.Duration
}

// NewClient dials GCS and binds the named bucket. credentialsFile may
// be empty, in which case application default credentials apply.
func NewClient(ctx context.Context, bucketName, credentialsFile string, putTimeout time.Duration) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		client:     client,
		bucket:     client.Bucket(bucketName),
		putTimeout: putTimeout,
	}, nil
}

// Close releases the underlying storage client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Put writes data under key with the given content-type metadata.
// Writes to an existing key overwrite it; keys are content-addressed,
// so identical submissions converge on identical objects.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if c.putTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.putTimeout)
		defer cancel()
	}

	w := c.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return nil
}
