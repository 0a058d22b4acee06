// Package media converts uploaded files into self-contained image references.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes caps an uploaded image
const DefaultMaxBytes = 5 << 20

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image exceeds the upload limit")
	ErrEmpty    = errors.New("file is empty")
)

// ImageDataURL reads an image and returns it as a base64 data URL. The
// content type is sniffed from the bytes; the client's claim is ignored.
func ImageDataURL(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
