package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// AssetStore abstracts the object storage holding audio clips and game
// recordings. Keys are namespaced by team: teams/<teamID>/...
type AssetStore interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	PublicURL(key string) string
}

// TeamPrefix returns the storage namespace of a team's assets
func TeamPrefix(teamID string) string {
	return "teams/" + teamID + "/"
}

// GamePrefix returns the storage namespace of a game's assets
func GamePrefix(teamID, gameID string) string {
	return TeamPrefix(teamID) + "games/" + gameID + "/"
}

// Noop is an AssetStore that stores nothing. It backs local development and
// the service test suites.
type Noop struct{}

// Upload implements AssetStore
func (Noop) Upload(_ context.Context, key string, _ string, _ io.Reader) (*UploadResult, error) {
	return &UploadResult{Key: key}, nil
}

// Delete implements AssetStore
func (Noop) Delete(context.Context, string) error { return nil }

// DeletePrefix implements AssetStore
func (Noop) DeletePrefix(context.Context, string) error { return nil }

// PublicURL implements AssetStore
func (Noop) PublicURL(string) string { return "" }
