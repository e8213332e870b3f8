// Package storage defines the file primitives the daily log service runs on.
package storage

// Provider is the interface for file operations under the dailies root.
// Every name is relative to Root.
type Provider interface {
	// Root returns the absolute directory all names resolve against.
	Root() string
	// Exists reports whether a regular file is stored under name.
	Exists(name string) (bool, error)
	// Read returns the raw bytes of the file. A missing file yields an
	// error matching os.ErrNotExist.
	Read(name string) ([]byte, error)
	// Write replaces the file with content in a single all-or-nothing step.
	Write(name string, content []byte) error
	// Glob returns the names directly under Root matching pattern, sorted.
	Glob(pattern string) ([]string, error)
}
