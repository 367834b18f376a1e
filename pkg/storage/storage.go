// Package storage abstracts where uploaded files (menu item images) live.
//
// Two drivers are available:
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once in internal/server, then:
//
//	storage.Put("menu/abc.jpg", data)
//	url := storage.URL("menu/abc.jpg")
package storage

import (
	"fmt"
	"io"
	"sync"
)

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager with the configured disks.
// Call once at application startup.
func Connect(defaultName string, s3Bucket string) {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = defaultName
	disks["local"] = newLocalDisk()

	if s3Bucket != "" {
		d, err := newS3Disk()
		if err != nil {
			fmt.Printf("storage/s3: %v (disk disabled)\n", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		defaultDisk = "local"
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation (used by tests).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

func defaultD() Disk { return Use(defaultDisk) }

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return defaultD().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return defaultD().PutStream(path, r) }

// Get returns file content from the default disk.
func Get(path string) ([]byte, error) { return defaultD().Get(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return defaultD().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return defaultD().Delete(path) }

// URL returns the public URL of path on the default disk.
func URL(path string) string { return defaultD().URL(path) }
