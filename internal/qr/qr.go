// Package qr renders QR codes for printed memorial plaques; each code links
// to a martyr's public profile page.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 512

// ProfilePNG encodes the public profile URL for slug as a PNG. size is the
// image edge in pixels; values below 64 fall back to the default.
func ProfilePNG(baseURL, slug string, size int) ([]byte, error) {
	if slug == "" {
		return nil, fmt.Errorf("empty slug")
	}
	if size < 64 {
		size = defaultSize
	}
	url := fmt.Sprintf("%s/martyrs/%s", strings.TrimSuffix(baseURL, "/"), slug)
	return qrcode.Encode(url, qrcode.Medium, size)
}
