package cmd

import (
	"crypto/md5"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/arcanaland/cardset/internal/config"
	"github.com/arcanaland/cardset/tarot"
)

// ansiWidth is the width in terminal columns of art rendered from an image.
const ansiWidth = 40

// rasterExtensions are the image formats that can be decoded into ANSI art.
var rasterExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// findAnsiArt returns the art for a card. Pre-rendered art in ansi32/ or
// ansi256/ wins; otherwise the card image is rendered and cached.
func findAnsiArt(d *tarot.Deck, c *tarot.Card) (string, error) {
	for _, dir := range []string{"ansi32", "ansi256"} {
		data, err := os.ReadFile(c.Path(filepath.Join(d.Path, dir), ".ansi"))
		if err == nil {
			return string(data), nil
		}
	}

	imagePath, ok := d.FindImage(c, rasterExtensions...)
	if !ok {
		return "", errors.Errorf("no ANSI art or convertible image found for card: %s", c.CanonicalID)
	}

	info, err := os.Stat(imagePath)
	if err != nil {
		return "", err
	}
	cachePath := filepath.Join(config.GetCacheDir(), "ansi_cache",
		fmt.Sprintf("%x.ansi", md5.Sum([]byte(fmt.Sprintf("%s:%d", imagePath, info.ModTime().UnixNano())))))
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := renderImage(imagePath, ansiWidth)
	if err != nil {
		return "", err
	}
	if err := writeCache(cachePath, art); err != nil {
		glog.Warningf("could not cache ANSI art for %s: %v", c.CanonicalID, err)
	}
	return art, nil
}

func writeCache(path, art string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(art), 0644)
}

// renderImage decodes an image file and converts it to ANSI art.
func renderImage(imagePath string, width int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open image")
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s", filepath.Base(imagePath))
	}
	return imageToAnsi(img, width), nil
}

// imageToAnsi renders img width columns wide using upper half blocks: each
// character covers a 2x2 pixel block, the top pair as foreground and the
// bottom pair as background. The height keeps the image's aspect ratio.
func imageToAnsi(img image.Image, width int) string {
	b := img.Bounds()
	height := (width*b.Dy() + b.Dx()) / (2 * b.Dx())
	if height < 1 {
		height = 1
	}
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buf strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			fg := pixelAt(resized, x, y).BlendRgb(pixelAt(resized, x+1, y), 0.5)
			bg := pixelAt(resized, x, y+1).BlendRgb(pixelAt(resized, x+1, y+1), 0.5)
			r1, g1, b1 := fg.RGB255()
			r2, g2, b2 := bg.RGB255()
			fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", r1, g1, b1, r2, g2, b2)
		}
		buf.WriteString("\x1b[0m\n")
	}
	return buf.String()
}

// pixelAt returns the color at x, y relative to the image origin. Pixels
// outside the image or fully transparent are black.
func pixelAt(img image.Image, x, y int) colorful.Color {
	b := img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return colorful.Color{}
	}
	c, ok := colorful.MakeColor(img.At(p.X, p.Y))
	if !ok {
		return colorful.Color{}
	}
	return c
}
