// Package storage provides the durable key/value slots that stand in for
// the browser's localStorage: named blobs written on every store mutation
// and read back once at startup to restore state.
package storage

import (
	"context"
	"errors"
)

// Well-known slot names. Each store owns exactly one slot.
const (
	SlotSession     = "admin-auth"
	SlotPreferences = "admin-theme-preferences"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("not found")

// Repository is a durable string-keyed blob store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
