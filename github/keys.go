package github

import (
	"context"
	"fmt"
)

// Keys provides access to a repository's deploy keys.
type Keys struct {
	client *Client
	owner  string
	repo   string
}

func (k *Keys) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/keys%s", k.owner, k.repo, more)
}

// List lists the repository's deploy keys.
func (k *Keys) List(ctx context.Context) ([]Key, error) {
	var keys []Key
	err := k.client.Get(ctx, k.path(""), &keys)
	return keys, err
}

// Get fetches a single deploy key by id.
func (k *Keys) Get(ctx context.Context, id int64) (*Key, error) {
	var key Key
	if err := k.client.Get(ctx, k.path(fmt.Sprintf("/%d", id)), &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// Create adds a new deploy key to the repository.
func (k *Keys) Create(ctx context.Context, opts *KeyOptions) (*Key, error) {
	var key Key
	if err := k.client.Post(ctx, k.path(""), opts, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// Delete removes a deploy key by id.
func (k *Keys) Delete(ctx context.Context, id int64) error {
	return k.client.Delete(ctx, k.path(fmt.Sprintf("/%d", id)))
}

// Key represents a repository deploy key.
type Key struct {
	ID       int64  `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Verified bool   `json:"verified"`
}

// KeyOptions is the request body for adding a deploy key.
type KeyOptions struct {
	Title string `json:"title"`
	Key   string `json:"key"`
}
