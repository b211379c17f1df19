package remote

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/common"
)

// FileStorage holds binary attachments behind public addresses.
type FileStorage interface {
	// Upload stores content under name and returns its public address.
	Upload(ctx context.Context, name string, content []byte, contentType string) (string, error)
	// Delete removes the file behind address. Addresses it does not own are ignored.
	Delete(ctx context.Context, address string) error
	// Owns reports whether address points into this storage.
	Owns(address string) bool
}

// UploadName builds a collision-resistant object name from the original file
// name: unix millis, a random suffix and the original extension.
func UploadName(original string, now time.Time) (string, error) {
	suffix, err := common.MakeRandHexString(4)
	if err != nil {
		return "", fmt.Errorf("random suffix: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext), nil
}
