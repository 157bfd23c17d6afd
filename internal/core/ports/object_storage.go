package ports

import "context"

// ObjectStorage uploads proof files to durable blob storage.
type ObjectStorage interface {
	// Put stores the file under the given key and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
