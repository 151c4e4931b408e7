package icons

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

const (
	sourceFileName = "master.png"
	maxThreshold   = 3 * 0xFF
)

var iconSizes = [...]int{16, 32, 48, 128}

type CLICmd struct {
	Transparent bool `help:"Replace near-black pixels with transparency" default:"false"`
	Threshold   int  `help:"Darkness threshold for transparency (0-765, higher is more aggressive)" default:"250"`

	// Resolved in Validate relative to the binary's own directory.
	SourcePath string `kong:"-"`
	OutputDir  string `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Threshold < 0 || c.Threshold > maxThreshold {
		return fmt.Errorf("invalid threshold value: %d, must be within 0-%d", c.Threshold, maxThreshold)
	}

	if (c.SourcePath == "") || (c.OutputDir == "") {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate own executable: %w", err)
		}
		baseDir := filepath.Dir(exe)

		if c.SourcePath == "" {
			c.SourcePath = filepath.Join(baseDir, sourceFileName)
		}
		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(baseDir, "..", "extension", "icons")
		}
	}

	return nil
}

func (c *CLICmd) Run() error {
	src, err := loadSource(c.SourcePath)
	if err != nil {
		return err
	}

	img := toNRGBA(src)
	bounds := img.Bounds()
	slog.Info("loaded master image", "file", c.SourcePath, "width", bounds.Dx(), "height", bounds.Dy())

	if cropped := cropSquare(img); cropped != img {
		img = cropped
		slog.Info("cropped to center square", "side", img.Bounds().Dx())
	}

	if c.Transparent {
		converted := keyDark(img, c.Threshold)
		slog.Info("keyed background to transparent", "threshold", c.Threshold, "pixels", converted)
	} else {
		slog.Info("keeping original background")
	}

	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.OutputDir, err)
	}

	for _, size := range iconSizes {
		name := fmt.Sprintf("icon%d.png", size)
		if err := savePNG(scaleSquare(img, size), c.OutputDir, name); err != nil {
			return fmt.Errorf("could not save icon %q: %w", name, err)
		}
		slog.Info("generated icon", "file", name, "size", size)
	}

	slog.Info("all icons saved", "dir", c.OutputDir, "count", len(iconSizes))
	return nil
}

func loadSource(path string) (image.Image, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not find source image at %q, place %q next to the binary", path, sourceFileName)
		}
		return nil, fmt.Errorf("could not open source image %q: %w", path, err)
	}
	defer func() {
		if close_err := imgFile.Close(); close_err != nil {
			slog.Error("could not close source image", "name", path, "error", close_err)
		}
	}()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode source image %q: %w", path, err)
	}
	return img, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok {
		return m
	}

	bounds := img.Bounds()
	dest := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dest, dest.Bounds(), img, bounds.Min, draw.Src)
	return dest
}
