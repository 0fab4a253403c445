package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a process-lifetime TTL cache. The category service uses it as a
// read-through cache keyed by entity, invalidated on writes.
type Store struct {
	c *gocache.Cache
}

func New(ttl time.Duration) *Store {
	return &Store{
		c: gocache.New(ttl, 2*ttl),
	}
}

func (s *Store) Get(key string) (interface{}, bool) {
	return s.c.Get(key)
}

func (s *Store) Set(key string, value interface{}) {
	s.c.Set(key, value, gocache.DefaultExpiration)
}

func (s *Store) Delete(key string) {
	s.c.Delete(key)
}
