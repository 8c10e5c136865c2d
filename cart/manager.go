package cart

import (
	"context"
	"errors"

	"creamery/localstore"
	"creamery/models"
)

// Notifier receives one "cart changed" signal after every persisted
// mutation. Views subscribe to the signal instead of being called
// directly by the engine.
type Notifier interface {
	CartChanged(sessionID string)
}

// Manager owns cart persistence. Every mutation is a read-modify-write
// of the whole serialized blob, so a subsequent read in the same
// session never sees a partial update.
type Manager struct {
	store    localstore.Store
	notifier Notifier
}

func NewManager(store localstore.Store, notifier Notifier) *Manager {
	return &Manager{store: store, notifier: notifier}
}

// Load returns the session's cart, or an empty cart when none was
// saved yet.
func (m *Manager) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	var c models.Cart
	err := m.store.Get(ctx, localstore.CartKey(sessionID), &c)
	if errors.Is(err, localstore.ErrNotFound) {
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = models.Cart{}
	}
	return c, nil
}

// Add applies the pure Add operation and persists the result.
func (m *Manager) Add(ctx context.Context, sessionID, productID, name string, price float64) (models.Cart, error) {
	c, err := m.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.save(ctx, sessionID, Add(c, productID, name, price))
}

// Remove decrements a line by 1. An unknown productID leaves the stored
// cart untouched and writes nothing.
func (m *Manager) Remove(ctx context.Context, sessionID, productID string) (models.Cart, error) {
	c, err := m.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := c[productID]; !ok {
		return c, nil
	}
	return m.save(ctx, sessionID, Remove(c, productID))
}

// DeleteLine removes a line entirely.
func (m *Manager) DeleteLine(ctx context.Context, sessionID, productID string) (models.Cart, error) {
	c, err := m.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := c[productID]; !ok {
		return c, nil
	}
	return m.save(ctx, sessionID, DeleteLine(c, productID))
}

// Clear drops the session's cart blob entirely, as happens after a
// confirmed order.
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, localstore.CartKey(sessionID)); err != nil {
		return err
	}
	m.notify(sessionID)
	return nil
}

func (m *Manager) save(ctx context.Context, sessionID string, next models.Cart) (models.Cart, error) {
	if err := m.store.Put(ctx, localstore.CartKey(sessionID), next); err != nil {
		return nil, err
	}
	m.notify(sessionID)
	return next, nil
}

func (m *Manager) notify(sessionID string) {
	if m.notifier != nil {
		m.notifier.CartChanged(sessionID)
	}
}
