package stub

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/stubgen/errors"
)

// Cache persists assembled stub programs between generator runs, keyed
// by the declaring function. Programs are pure data, so a cache hit is
// byte-for-byte equivalent to regeneration as long as the key captures
// every input that influences assembly.
type Cache struct {
	dir string
}

// NewCache opens (creating if needed) a cache directory.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.PhaseCache, errors.KindInvalidInput, err, "cannot create cache directory")
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache key for a function from everything Build reads:
// name, stub direction, frame-boundedness, and each position's shape
// and annotations.
func (c *Cache) Key(fn Func) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%t", fn.Name, fn.Direction, fn.FrameBounded)
	for _, p := range fn.Params {
		fmt.Fprintf(h, "|%s:%s:%t:%d:%d", p.Name, p.Type, p.ByRef, p.Declared, p.ByValue)
	}
	if fn.Return != nil {
		fmt.Fprintf(h, "|ret:%s", *fn.Return)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".stub")
}

// Load returns the cached program for a key, or found=false on a miss.
func (c *Cache) Load(key string) (prog *Program, found bool, err error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.PhaseCache, errors.KindInvalidData, err, "cannot read cached stub")
	}

	var p Program
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, false, errors.Wrap(errors.PhaseCache, errors.KindInvalidData, err, "cached stub is corrupt")
	}
	return &p, true, nil
}

// Store writes a program under a key.
func (c *Cache) Store(key string, prog *Program) error {
	data, err := msgpack.Marshal(prog)
	if err != nil {
		return errors.Wrap(errors.PhaseCache, errors.KindInvalidData, err, "cannot encode stub program")
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return errors.Wrap(errors.PhaseCache, errors.KindInvalidData, err, "cannot write cached stub")
	}
	return nil
}
