package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCashierCachePutGet(t *testing.T) {
	c := NewCashierCache()
	id := uuid.New()

	_, ok := c.Get(id)
	assert.False(t, ok)

	c.Put(Cashier{ID: id, Username: "jperez", Role: "cashier"})

	got, ok := c.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "jperez", got.Username)
	assert.Equal(t, "cashier", got.Role)
}

func TestCashierCacheGetName(t *testing.T) {
	c := NewCashierCache()
	id := uuid.New()

	assert.Equal(t, "Unknown", c.GetName(id))

	c.Put(Cashier{ID: id, Username: "mlopez", Role: "manager"})
	assert.Equal(t, "mlopez", c.GetName(id))
}

func TestCashierCachePutReplaces(t *testing.T) {
	c := NewCashierCache()
	id := uuid.New()

	c.Put(Cashier{ID: id, Username: "viejo", Role: "cashier"})
	c.Put(Cashier{ID: id, Username: "nuevo", Role: "cashier"})

	assert.Equal(t, "nuevo", c.GetName(id))
}
