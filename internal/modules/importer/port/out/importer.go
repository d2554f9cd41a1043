package out

import "context"

// ExportReader provides the filesystem facts the import path needs. Size is
// checked before Read so oversized exports are never loaded.
type ExportReader interface {
	Size(ctx context.Context, path string) (int64, error)
	Read(ctx context.Context, path string) (string, error)
}
