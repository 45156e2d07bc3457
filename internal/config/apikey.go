package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ResolveAPIKey picks the key to send upstream: an explicit key wins, then the
// first line of keyFile when that file exists, else no key at all.
func ResolveAPIKey(explicit, keyFile string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if keyFile == "" {
		return "", nil
	}

	f, err := os.Open(keyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open api key file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return "", nil
}
