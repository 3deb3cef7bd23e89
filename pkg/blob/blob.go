package blob

import (
	"context"
	"io"
)

// Store is the capability the application needs from blob storage: put an
// object and resolve its public URL. Concrete backends live behind this
// interface so the core never talks to a vendor SDK directly.
type Store interface {
	Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error)
	PublicURL(bucket, path string) string
}
