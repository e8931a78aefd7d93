// Package imageinput loads design images from files, data URLs and http(s)
// URLs.
package imageinput

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/mj1618/uibuilder/internal/errors"
)

// MaxSize bounds the size of a loaded image.
const MaxSize = 50 << 20

// DefaultMIMEType is assumed when the type cannot be detected.
const DefaultMIMEType = "image/jpeg"

// Image is a loaded design image.
type Image struct {
	Data     []byte
	MIMEType string
	Source   string
	Width    int
	Height   int
}

// DataURL returns the image encoded as a base64 data URL.
func (img *Image) DataURL() string {
	return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// Decode decodes the image pixels using the registered formats.
func (img *Image) Decode() (image.Image, error) {
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", img.Source)
	}
	return decoded, nil
}

var dataURLRe = regexp.MustCompile(`^data:([^;,]+);base64,(.+)$`)

// ParseDataURL decodes a base64 data URL.
func ParseDataURL(s string) (*Image, error) {
	m := dataURLRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, errors.New("not a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, errors.Wrap(err, "decode data URL payload")
	}
	return FromBytes(data, m[1], "data-url")
}

// FromBytes wraps raw image bytes. An empty mimeType is sniffed from the
// content. Dimensions are filled in when the format is recognized.
func FromBytes(data []byte, mimeType, source string) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.Newf("image %s is empty", source)
	}
	if len(data) > MaxSize {
		return nil, errors.Newf("image %s exceeds %d bytes", source, MaxSize)
	}
	if mimeType == "" {
		mimeType = DetectMIMEType(data)
	}
	img := &Image{Data: data, MIMEType: mimeType, Source: source}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width, img.Height = cfg.Width, cfg.Height
	}
	return img, nil
}

// DetectMIMEType sniffs the content type of image bytes, falling back to
// DefaultMIMEType for anything that is not an image.
func DetectMIMEType(data []byte) string {
	detected := http.DetectContentType(data)
	if idx := strings.Index(detected, ";"); idx != -1 {
		detected = strings.TrimSpace(detected[:idx])
	}
	if !strings.HasPrefix(detected, "image/") {
		return DefaultMIMEType
	}
	return detected
}

// Load reads an image from a data URL, an http(s) URL or a file path.
func Load(ctx context.Context, ref string) (*Image, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		return ParseDataURL(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return Fetch(ctx, http.DefaultClient, ref)
	default:
		return ReadFile(ref)
	}
}

// LoadRemote is Load restricted to data URLs and http(s) URLs, for
// requests arriving over the network.
func LoadRemote(ctx context.Context, ref string) (*Image, error) {
	if strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return Load(ctx, ref)
	}
	return nil, errors.WithHint(
		errors.New("image must be a data URL or an http(s) URL"),
		"encode the image as data:<mime>;base64,<data>")
}

// ReadFile loads an image from disk.
func ReadFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", path)
	}
	return FromBytes(data, "", path)
}

// Fetch downloads an image over HTTP.
func Fetch(ctx context.Context, client *http.Client, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}
	mimeType := ""
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
		mimeType = strings.TrimSpace(strings.SplitN(ct, ";", 2)[0])
	}
	return FromBytes(data, mimeType, url)
}
