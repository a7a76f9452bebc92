// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxPhotoWidth = 1600

// ConvertImageToWebP decodes an uploaded image, downsizes anything wider than
// maxPhotoWidth, and re-encodes as webp. Job-site phone photos are routinely
// 5-10MB; this keeps stored documents small without visibly hurting them.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes a sanitized original name with a timestamp
// and a short uuid so concurrent uploads never collide.
func GenerateUniqueFilename(folder, original string) string {
	base := sanitizeFilename(strings.TrimSpace(original))
	if base == "" {
		base = "file"
	}
	stamp := time.Now().Format("20060102-150405")
	short := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%s-%s-%s", folder, stamp, short, base)
}
