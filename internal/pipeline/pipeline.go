// Package pipeline derives the resolution variants of one accepted
// submission and persists them to the object store.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/jiftechnify/upix-api/internal/imaging"
	"github.com/jiftechnify/upix-api/internal/logger"
	"github.com/jiftechnify/upix-api/internal/types"
)

// ObjectStore is the durable destination for derived artifacts.
// Implementations must be safe for concurrent Puts. Any failure is
// treated uniformly; the pipeline never retries.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Uploader derives and persists every resolution variant of one
// decoded submission. It is built per request; the image and hash are
// shared read-only across its tasks, and each task owns its encoded
// buffer exclusively.
type Uploader struct {
	img   image.Image
	hash  string
	store ObjectStore
}

func NewUploader(img image.Image, hash string, store ObjectStore) *Uploader {
	return &Uploader{
		img:   img,
		hash:  hash,
		store: store,
	}
}

// StorageKey returns the object name for the variant at the given
// scale: "<hash>.png" for the original, "<hash>_<scale>x.png" for
// upscaled variants. Identical submissions always produce identical
// keys, so the store deduplicates by overwrite.
func StorageKey(hash string, scale int) string {
	if scale == 1 {
		return fmt.Sprintf("%s.%s", hash, imaging.OutputExtension)
	}
	return fmt.Sprintf("%s_%dx.%s", hash, scale, imaging.OutputExtension)
}

// Run derives, encodes and persists one variant per scale factor, all
// concurrently, and waits for every task to reach a terminal state
// before reporting. A failing task does not cancel its siblings, so
// variants that already uploaded stay in the store even when the run
// as a whole fails; there is no rollback of partial results.
func (u *Uploader) Run(ctx context.Context) ([]types.UploadedImage, error) {
	results := make([]types.UploadedImage, len(imaging.ScaleFactors))

	var g errgroup.Group
	for i, scale := range imaging.ScaleFactors {
		g.Go(func() error {
			uploaded, err := u.uploadVariant(ctx, scale)
			if err != nil {
				return err
			}
			results[i] = uploaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// uploadVariant produces the variant for one scale factor and writes
// it to the store under its content-addressed key.
func (u *Uploader) uploadVariant(ctx context.Context, scale int) (types.UploadedImage, error) {
	scaled := imaging.Upscale(u.img, scale)

	data, err := imaging.EncodePNG(scaled)
	if err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to encode %dx variant: %w", scale, err)
	}

	key := StorageKey(u.hash, scale)
	logger.Debug(ctx, "uploading image variant", logger.Fields{
		"key":   key,
		"scale": scale,
		"bytes": len(data),
	})

	if err := u.store.Put(ctx, key, data, imaging.OutputMIMEType); err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to upload %dx variant %s: %w", scale, key, err)
	}

	logger.Info(ctx, "uploaded image variant", logger.Fields{
		"key":   key,
		"scale": scale,
	})
	return types.UploadedImage{Scale: uint(scale), Name: key}, nil
}
