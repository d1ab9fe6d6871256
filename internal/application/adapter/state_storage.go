package adapter

import "context"

// StateStorage is a durable key-value slot holding serialized UI state.
type StateStorage interface {
	// Load returns the stored value, or found=false when the key holds nothing.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
