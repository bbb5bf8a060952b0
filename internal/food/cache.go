// ABOUTME: Single-shot cache of the most recent search result set.
// ABOUTME: Overwritten by every search; consumed by index on a later log command.
package food

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/macrofactor/internal/models"
)

// ErrNoSearch is returned when no search result set is cached.
var ErrNoSearch = errors.New("no search results cached: run `macrofactor search-food` first")

// Cache persists the last search result list as one small JSON document.
// It is not durable across runs that clear the backing store, and that is
// fine: it only bridges a search command to the next log-by-index command.
type Cache struct {
	path string
}

// NewCache returns a Cache backed by last-search.json under dir.
func NewCache(dir string) *Cache {
	return &Cache{path: filepath.Join(dir, "last-search.json")}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// Save overwrites the cache with a new result set.
func (c *Cache) Save(results []models.SearchFoodResult) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("write search cache: %w", err)
	}
	return nil
}

// Load reads the cached result set. A missing cache surfaces as ErrNoSearch.
func (c *Cache) Load() ([]models.SearchFoodResult, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSearch
		}
		return nil, fmt.Errorf("read search cache: %w", err)
	}

	var results []models.SearchFoodResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("search cache is corrupt, run `macrofactor search-food` again: %w", err)
	}
	return results, nil
}
