package timeline

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"whiteboard/internal/note"
)

// Cache memoizes Build by the content it depends on: the options and each
// note's id and date, in order.
type Cache struct {
	cache *cache.Cache
}

func NewCache() *Cache {
	return &Cache{cache: cache.New(10*time.Minute, 15*time.Minute)}
}

func (c *Cache) Build(notes []note.Note, opts Options) (Result, error) {
	key := cacheKey(notes, opts)
	if x, found := c.cache.Get(key); found {
		return x.(Result), nil
	}

	res, err := Build(notes, opts)
	if err != nil {
		return Result{}, err
	}
	c.cache.Set(key, res, cache.DefaultExpiration)
	return res, nil
}

func (c *Cache) Len() int { return c.cache.ItemCount() }

func cacheKey(notes []note.Note, opts Options) string {
	h := xxh3.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(opts.Threshold)))
	_, _ = h.Write(buf[:])
	if opts.SplitHalves {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}

	for _, n := range notes {
		_, _ = h.WriteString(n.ID)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(n.Date)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
