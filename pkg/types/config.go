// Package types defines the Store and Table interfaces, the library entity
// types, and standard errors shared by every storage backend.
package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend    string `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataDir    string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr" mapstructure:"listen_addr"`
}

// Supported backend names.
const (
	BackendSQLite   = "sqlite"
	BackendFlatFile = "flatfile"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite:   true,
	BackendFlatFile: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
