package manifesticons

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// lanczos3Kernel is a Lanczos-3 resampling kernel (sinc windowed by sinc, support 3).
//
// The draw package stretches the kernel by the scale factor when downscaling,
// so it acts as a low-pass filter and avoids aliasing in small icons.
var lanczos3Kernel = &draw.Kernel{Support: 3, At: lanczos3}

// Lanczos-3 kernel function (sinc-based)
func lanczos3(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	if math.Abs(x) >= 3.0 {
		return 0.0
	}
	pix := math.Pi * x
	return 3.0 * math.Sin(pix) * math.Sin(pix/3.0) / (pix * pix)
}

// ResizeLanczos3 resizes the source image to the specified dimensions using Lanczos-3 interpolation.
//
// The whole source rectangle is mapped onto the destination, so the aspect ratio
// is not preserved: a 300x200 source resized to 96x96 is stretched, not letterboxed.
//
// Parameters:
//   - width: The width of the output image
//   - height: The height of the output image
//   - src: The source image to resize
//
// Returns:
//   - *image.RGBA: The resized image. Non-positive dimensions give an empty image.
func ResizeLanczos3(width, height int, src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if dst.Rect.Empty() || src.Bounds().Empty() {
		return dst
	}
	lanczos3Kernel.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
