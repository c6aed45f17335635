package storage

import "context"

// UploadResult is what the object store hands back after an upload: the
// public URL served to clients and the key needed to delete the object.
type UploadResult struct {
	URL string
	Key string
}

// ObjectStorage abstracts the remote object store holding image bytes.
type ObjectStorage interface {
	// Upload stores data under a per-user folder and returns the public
	// URL and deletion key.
	Upload(ctx context.Context, data []byte, folder, filename, contentType string) (*UploadResult, error)

	// Delete removes a previously uploaded object by key.
	Delete(ctx context.Context, key string) error
}
