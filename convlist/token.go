package convlist

import (
	"errors"
	"os"
	"strings"
)

// DefaultTokenFile is read from the working directory.
const DefaultTokenFile = "TOKEN"

// ReadTokenFile returns the trimmed contents of path. Any problem, including
// an empty file, is a *ConfigError.
func ReadTokenFile(path string) (string, error) {
	if path == "" {
		path = DefaultTokenFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ConfigError{Path: path, Err: err}
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", &ConfigError{Path: path, Err: errors.New("token file is empty")}
	}
	return token, nil
}
