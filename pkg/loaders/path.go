package loaders

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	return expanded, nil
}
