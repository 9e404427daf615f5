package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/themeforge/internal/style"
)

// Serialize renders the theme's resolved tree as JSON with snake_case keys
// in emission order. indent <= 0 writes compact JSON. The output always
// ends in a newline.
func Serialize(t *Theme, indent int) ([]byte, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("theme is empty")
	}
	tree, err := style.RenameKeys(t.Root, style.SnakeCase)
	if err != nil {
		return nil, fmt.Errorf("serialize theme %s: %w", t.Name, err)
	}

	var data []byte
	if indent > 0 {
		data, err = json.MarshalIndent(tree, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(tree)
	}
	if err != nil {
		return nil, fmt.Errorf("serialize theme %s: %w", t.Name, err)
	}
	return append(data, '\n'), nil
}

// Write serializes the theme to <dir>/<slug>.json, creating dir if needed,
// and returns the written path.
func Write(dir string, t *Theme, indent int) (string, error) {
	data, err := Serialize(t, indent)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, Slug(t.Name)+".json")
	tmp, err := os.CreateTemp(dir, ".theme-*.json")
	if err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	return path, nil
}
