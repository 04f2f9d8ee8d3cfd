// Package manifesticons generates the square PNG icons a web-app manifest
// references from a single master image.
//
// The master image is read once and resized with a Lanczos-3 filter to each
// entry of a fixed job list. Every output is written as PNG and any existing
// file with the same name is overwritten.
package manifesticons

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	// Decoders for master images. Output is always PNG.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultDir holds both the master image and the generated icons.
	DefaultDir = "icons"

	// SourceName is the file name of the master image inside DefaultDir.
	SourceName = "icon-512x512.png"

	// SuccessMessage is printed once every icon has been written.
	SuccessMessage = "Ícones gerados com sucesso!"
)

var (
	ErrSourceMissing = errors.New("source image missing")
	ErrDecode        = errors.New("source image cannot be decoded")
	ErrEncode        = errors.New("icon cannot be written")
	ErrInvalidJob    = errors.New("invalid resize job")
)

// Job describes one derived icon: a square of Size pixels saved as Filename.
type Job struct {
	Size     int
	Filename string
}

var sizes = [...]int{72, 96, 128, 144, 152, 192, 384}

// FilenameFor returns the canonical file name for a square icon of the given size.
func FilenameFor(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// JobFor returns the job producing the canonical icon of the given size.
func JobFor(size int) Job {
	return Job{Size: size, Filename: FilenameFor(size)}
}

// Jobs returns the resize job list in generation order.
// The returned slice is a fresh copy and may be modified by the caller.
func Jobs() []Job {
	jobs := make([]Job, 0, len(sizes))
	for _, size := range sizes {
		jobs = append(jobs, JobFor(size))
	}
	return jobs
}

// Generate reads dir/icon-512x512.png and writes every icon of Jobs into dir.
func Generate(dir string) error {
	return GenerateFrom(filepath.Join(dir, SourceName), dir, Jobs())
}

// GenerateFrom resizes the image at src once per job and saves the results in outDir.
//
// Jobs run in order and the first failure aborts the run. Files written by
// earlier jobs are left in place. Nothing is written when the source cannot be
// opened or decoded.
//
// Errors match ErrInvalidJob, ErrSourceMissing, ErrDecode or ErrEncode with errors.Is.
func GenerateFrom(src, outDir string, jobs []Job) error {
	for _, job := range jobs {
		if err := job.validate(); err != nil {
			return err
		}
	}

	img, err := loadImage(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", ErrEncode, err)
	}

	for _, job := range jobs {
		resized := ResizeLanczos3(job.Size, job.Size, img)
		dest := filepath.Join(outDir, job.Filename)
		if err := saveImage(resized, dest); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	}
	return nil
}

func (j Job) validate() error {
	if j.Size <= 0 {
		return fmt.Errorf("%w: size must be greater than zero, got %d", ErrInvalidJob, j.Size)
	}
	if j.Filename == "" || j.Filename == "." || j.Filename == ".." || filepath.Base(j.Filename) != j.Filename {
		return fmt.Errorf("%w: %q is not a plain file name", ErrInvalidJob, j.Filename)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image %s: %w", ErrSourceMissing, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat image %s: %w", ErrSourceMissing, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceMissing, path)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// saveImage saves an image to the specified path in PNG format
func saveImage(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
