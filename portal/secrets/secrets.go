// Package secrets loads the Wi-Fi credentials.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mailru/easyjson"
)

// DefaultPath is where the credentials file is looked up.
const DefaultPath = "secrets.json"

// Hint is printed when the credentials are missing.
const Hint = "WiFi secrets are kept in secrets.json, please add them there!"

// ErrMissing means there is no usable credentials file.
var ErrMissing = errors.New("secrets: missing wifi credentials")

// Credentials are held in memory only.
//
//easyjson:json
type Credentials struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

// String redacts the password.
func (c Credentials) String() string {
	if c.Password == "" {
		return fmt.Sprintf("ssid=%q (open)", c.SSID)
	}
	return fmt.Sprintf("ssid=%q password=%s", c.SSID, strings.Repeat("*", 8))
}

// Parse decodes a credentials document.
func Parse(b []byte) (Credentials, error) {
	var c Credentials
	if err := easyjson.Unmarshal(b, &c); err != nil {
		return Credentials{}, fmt.Errorf("secrets: %w", err)
	}
	if strings.TrimSpace(c.SSID) == "" {
		return Credentials{}, fmt.Errorf("%w: empty ssid", ErrMissing)
	}
	return c, nil
}

// Load reads and parses path from fsys.
func Load(fsys fs.FS, path string) (Credentials, error) {
	if fsys == nil {
		return Credentials{}, ErrMissing
	}
	if path == "" {
		path = DefaultPath
	}
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return Credentials{}, fmt.Errorf("secrets: read %s: %w", path, err)
	}
	return Parse(b)
}
