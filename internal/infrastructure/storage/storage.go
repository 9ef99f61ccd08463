package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newPublicID builds a collision-free, route-safe blob name:
// <unix-nano>_<8-char random><original extension>. Two uploads in the
// same request or across concurrent requests never collide thanks to
// the random suffix.
func newPublicID(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), suffix, ext)
}
