package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	store := New(time.Minute)

	store.Set("answer", 42)

	value, found := store.Get("answer")
	assert.True(t, found)
	assert.Equal(t, 42, value)
}

func TestGet_MissingKey(t *testing.T) {
	store := New(time.Minute)

	_, found := store.Get("ghost")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	store := New(time.Minute)

	store.Set("answer", 42)
	store.Delete("answer")

	_, found := store.Get("answer")
	assert.False(t, found)
}

func TestEntriesExpire(t *testing.T) {
	store := New(20 * time.Millisecond)

	store.Set("answer", 42)
	time.Sleep(50 * time.Millisecond)

	_, found := store.Get("answer")
	assert.False(t, found)
}
