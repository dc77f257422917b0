package storage

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/shashiranjanraj/shinyflakes/config"
	"github.com/shashiranjanraj/shinyflakes/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager.
// Call once at application startup (e.g. in internal/server/server.go).
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()

	// Always boot the local disk.
	local := newLocalDisk()
	disks["local"] = local

	// Boot the S3 disk only if a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		defaultDisk = "local"
	}
}

// UseDisk returns the named disk ("local" or "s3").
func UseDisk(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// Default returns the configured default disk.
func Default() Disk {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	if name == "" {
		// Manager not booted (tests); fall back to a local disk on the fly.
		return newLocalDisk()
	}
	return UseDisk(name)
}

// ── Default-disk helpers ─────────────────────────────────────────────────────

func Put(path string, content []byte) error { return Default().Put(path, content) }
func Get(path string) ([]byte, error)       { return Default().Get(path) }
func Exists(path string) bool               { return Default().Exists(path) }
func Delete(path string) error              { return Default().Delete(path) }

// URL returns the public URL for an asset path on the default disk.
func URL(path string) string { return Default().URL(path) }

// FileServer serves the local disk's files (mounted on /storage/* so the
// seeded product image paths resolve in development).
func FileServer() http.Handler {
	d, ok := UseDisk("local").(*localDisk)
	if !ok {
		return http.NotFoundHandler()
	}
	return d.fileServer()
}
