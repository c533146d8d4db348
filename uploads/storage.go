// Package uploads owns the on-disk file tree for entity-owned assets.
// Every provider, client, service and article gets a directory derived from
// its kind and numeric id; deleting the entity removes the whole subtree.
package uploads

import (
	"os"
	"path/filepath"
	"strconv"
)

type Storage struct {
	Root string
}

// Default is the process-wide storage, configured from the environment in
// main before any route is served.
var Default = &Storage{Root: "uploads"}

func (s *Storage) ProviderDir(providerID uint) string {
	return filepath.Join(s.Root, "providers", itoa(providerID))
}

func (s *Storage) ClientDir(clientID uint) string {
	return filepath.Join(s.Root, "clients", itoa(clientID))
}

// Service and article assets live under their owning provider, so removing
// the provider's directory removes theirs as well.
func (s *Storage) ServiceDir(providerID, serviceID uint) string {
	return filepath.Join(s.ProviderDir(providerID), "services", itoa(serviceID))
}

func (s *Storage) ArticleDir(providerID, articleID uint) string {
	return filepath.Join(s.ProviderDir(providerID), "articles", itoa(articleID))
}

// Ensure creates dir (and parents) so an upload can be written into it.
func (s *Storage) Ensure(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
