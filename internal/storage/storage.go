package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage contains the object storage abstraction used for lead
// attachments and resumes. Implementations stream readers directly, no
// local disk.

// ErrNotConfigured is returned by the null-object implementation; callers
// treat it as "skip uploads", never as a submission failure.
var ErrNotConfigured = errors.New("object storage not configured")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object storage client for attachment uploads.
type Storage interface {
	// Configured reports whether uploads can be attempted at all.
	Configured() bool
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PublicURL returns the browsable URL for an uploaded key.
	PublicURL(key string) string
}

// Noop is the null-object Storage selected when no backend is configured.
type Noop struct{}

func (Noop) Configured() bool { return false }

func (Noop) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrNotConfigured
}

func (Noop) PublicURL(string) string { return "" }
