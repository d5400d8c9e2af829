package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu sync.RWMutex
	pepper   string
)

// InitPepper loads the site-wide pepper from the given file, generating and
// persisting a fresh one if the file does not exist yet. It must be called
// once at startup before any hashing happens; a failure here is a
// configuration error and should abort the process.
func InitPepper(path string) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		value := strings.TrimSpace(string(data))
		if value == "" {
			return fmt.Errorf("cryptox: pepper file %s is empty", path)
		}
		setPepper(value)
		return nil

	case os.IsNotExist(err):
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("cryptox: generate pepper: %w", err)
		}
		value := base64.RawURLEncoding.EncodeToString(raw)
		if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
			return fmt.Errorf("cryptox: write pepper file: %w", err)
		}
		setPepper(value)
		return nil

	default:
		return fmt.Errorf("cryptox: read pepper file: %w", err)
	}
}

func setPepper(value string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepper = value
}

func activePepper() string {
	pepperMu.RLock()
	defer pepperMu.RUnlock()
	return pepper
}
