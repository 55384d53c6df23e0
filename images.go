package trails

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/binarytrails/trails/content"
)

const (
	avatarSize    = 256
	jpegQuality   = 85
	maxAvatarSize = 10 << 20 // 10MB
)

// processAvatar decodes an image, crops it to a centered square, scales it
// to size×size, and encodes it as JPEG.
func processAvatar(src io.Reader, size int) ([]byte, error) {
	img, _, err := image.Decode(io.LimitReader(src, maxAvatarSize))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	side := min(bounds.Dx(), bounds.Dy())
	crop := image.Rect(0, 0, side, side).Add(image.Pt(
		bounds.Min.X+(bounds.Dx()-side)/2,
		bounds.Min.Y+(bounds.Dy()-side)/2,
	))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// avatarFile maps an author's avatar reference to a file under the static
// directory. Remote avatars are not fetched.
func (a *App) avatarFile(author content.Author) (string, bool) {
	ref := author.Avatar
	if ref == "" || strings.Contains(ref, "://") {
		return "", false
	}
	ref = strings.TrimPrefix(ref, "/static/")
	return filepath.Join(a.Config.StaticDir, filepath.FromSlash(filepath.Clean("/"+ref))), true
}

func (a *App) handleAvatar(c echo.Context) error {
	slug, ok := strings.CutSuffix(c.Param("file"), ".jpg")
	if !ok || slug == "" {
		return echo.ErrNotFound
	}
	author, err := a.Library.Author(slug)
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	path, ok := a.avatarFile(author)
	if !ok {
		return echo.ErrNotFound
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := processAvatar(f, avatarSize)
	if err != nil {
		return fmt.Errorf("avatar %s: %w", slug, err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}
