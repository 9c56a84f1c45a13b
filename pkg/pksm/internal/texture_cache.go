package internal

const defaultMaxCacheSize = 64

// TextureCache is a small LRU keyed by string. Backends store rendered text
// and rasterized sprites in it; evict releases whatever the value holds
// (an SDL texture, for instance) when it falls out of the cache.
type TextureCache[V any] struct {
	textures map[string]V
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
	evict    func(V)
}

func NewTextureCache[V any](evict func(V)) *TextureCache[V] {
	return NewTextureCacheWithSize(defaultMaxCacheSize, evict)
}

func NewTextureCacheWithSize[V any](maxSize int, evict func(V)) *TextureCache[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache[V]{
		textures: make(map[string]V),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		evict:    evict,
	}
}

func (c *TextureCache[V]) Get(key string) (V, bool) {
	texture, exists := c.textures[key]
	if exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
	}
	return texture, exists
}

func (c *TextureCache[V]) Set(key string, texture V) {
	// If key already exists, release the old value and move to end
	if old, exists := c.textures[key]; exists {
		c.release(old)
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache[V]) Len() int {
	return len(c.order)
}

func (c *TextureCache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		c.release(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache[V]) release(v V) {
	if c.evict != nil {
		c.evict(v)
	}
}

func (c *TextureCache[V]) Destroy() {
	for _, texture := range c.textures {
		c.release(texture)
	}
	c.textures = make(map[string]V)
	c.order = c.order[:0]
}
