package srv

/* ------------------- simple JSON persistence (shared by stores) ------------------- */

import (
	"encoding/json"
	"os"
)

func ensureDir(dir string) error { return os.MkdirAll(dir, 0o755) }

// writeJSONAtomic writes v as indented JSON through a temp-file rename,
// so readers never observe a half-written store.
func writeJSONAtomic(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
