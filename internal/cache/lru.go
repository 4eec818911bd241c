package cache

import (
	"container/list"
	"sync"
)

// Cache is a fixed-size least-recently-used map.
type Cache[V any] struct {
	mu   sync.Mutex
	cap  int
	ll   *list.List
	data map[string]*list.Element
}

type entry[V any] struct {
	key   string
	value V
}

func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = 8
	}
	return &Cache[V]{
		cap:  capacity,
		ll:   list.New(),
		data: make(map[string]*list.Element),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.data[key]; ok {
		c.ll.MoveToFront(ele)
		return ele.Value.(*entry[V]).value, true
	}
	var zero V
	return zero, false
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.data[key]; ok {
		c.ll.MoveToFront(ele)
		ele.Value.(*entry[V]).value = value
		return
	}
	el := c.ll.PushFront(&entry[V]{key: key, value: value})
	c.data[key] = el
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		if last != nil {
			c.ll.Remove(last)
			delete(c.data, last.Value.(*entry[V]).key)
		}
	}
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
