package lru

import (
	"container/list"
	"sync"

	"github.com/pkg/errors"
)

var ErrIllegalCapacity = errors.New("illegal lru cache capacity")

// Cache is a fixed capacity LRU keyed by uint64 hashes.
type Cache struct {
	mu        sync.Mutex
	capacity  int
	evictList *list.List
	elems     map[uint64]*list.Element
}

type entry struct {
	key   uint64
	value interface{}
}

func New(capacity int) (*Cache, error) {
	if capacity < 1 {
		return nil, ErrIllegalCapacity
	}

	return &Cache{
		capacity:  capacity,
		evictList: list.New(),
		elems:     make(map[uint64]*list.Element),
	}, nil
}

func (c *Cache) Get(key uint64) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.elems[key]
	if !ok {
		return nil, false
	}

	c.evictList.MoveToFront(elem)
	return elem.Value.(*entry).value, true
}

// Add stores value under key and reports whether an eviction happened.
func (c *Cache) Add(key uint64, value interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.elems[key]; ok {
		c.evictList.MoveToFront(elem)
		elem.Value.(*entry).value = value
		return false
	}

	c.elems[key] = c.evictList.PushFront(&entry{key: key, value: value})
	if c.evictList.Len() <= c.capacity {
		return false
	}

	oldest := c.evictList.Back()
	if oldest == nil {
		return false
	}

	c.evictList.Remove(oldest)
	delete(c.elems, oldest.Value.(*entry).key)

	return true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}
