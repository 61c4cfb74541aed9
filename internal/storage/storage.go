package storage

import "context"

// Object is a stored artifact: its backend key and the durable public URL
// callers can fetch it from.
type Object struct {
	Key string
	URL string
}

// ObjectStore is the capability the pipeline depends on. The backend is
// append-only with a unique key per upload, so concurrent requests need no
// coordination.
type ObjectStore interface {
	Store(ctx context.Context, localPath string, contentType string) (Object, error)
	Delete(ctx context.Context, key string) (bool, error)
}
