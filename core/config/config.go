package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache       sync.Map // reflect.Type -> any (value of T)
	loadMu      sync.Mutex
	dotenvOnce  sync.Once
	dotenvFiles = []string{".env"}
)

// ErrNilTarget is returned when Load is called with a nil pointer.
var ErrNilTarget = errors.New("config: target must be a non-nil pointer")

// Load populates cfg from environment variables using `env` struct tags.
// The first call for a given type parses the environment; later calls for the
// same type copy the cached value. A .env file in the working directory is
// loaded once, before the first parse; variables already set take precedence.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	// Another goroutine may have finished loading while we waited.
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	loadDotenv()

	var v T
	if err := env.Parse(&v); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache.Store(typ, v)
	*cfg = v
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

func loadDotenv() {
	dotenvOnce.Do(func() {
		for _, f := range dotenvFiles {
			// A missing .env file is normal outside local development.
			if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
				panic(fmt.Errorf("config: load %s: %w", f, err))
			}
		}
	})
}
