package provider

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/cordonnier/peakgen/geo"
)

// ImageOptions configures an ImageProvider.
type ImageOptions struct {
	// Size is the terrain side length in meters the image is stretched
	// across; defaults to the image's pixel width if zero.
	Size int
	// LOD is the target sample count passed through to sample distribution.
	LOD int
	// Seed seeds the provider's RNG (sample-distribution jitter only;
	// the image itself is deterministic).
	Seed int64
}

// ImageProvider implements Provider by decoding per-pixel terrain
// factors from an image, per spec.md §9: a pixel is sea when
// blue >= max(red, green), with seaFactor = lerp(-1, 1, (255-blue)/255);
// otherwise it is land with upliftFactor = green/255, slopeFactor = red/255.
type ImageProvider struct {
	img  image.Image
	opts ImageOptions
	rng  *rand.Rand
}

// NewImageProvider wraps img. The image's bounds define the coordinate
// space: world (x, y) in [-Size/2, Size/2] map linearly onto the image's
// pixel rectangle, with +y pointing toward decreasing pixel row (image
// row 0 is the +Y edge).
func NewImageProvider(img image.Image, opts ImageOptions) *ImageProvider {
	if opts.Size == 0 {
		opts.Size = img.Bounds().Dx()
	}
	return &ImageProvider{
		img:  img,
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
}

func (p *ImageProvider) pixelAt(x, y float64) color.Color {
	b := p.img.Bounds()
	h := float64(p.opts.Size) / 2
	u := (x + h) / float64(p.opts.Size) // [0,1]
	v := (h - y) / float64(p.opts.Size) // [0,1], row 0 = +Y

	px := b.Min.X + int(u*float64(b.Dx()))
	py := b.Min.Y + int(v*float64(b.Dy()))
	px = int(geo.Clamp(float64(px), float64(b.Min.X), float64(b.Max.X-1)))
	py = int(geo.Clamp(float64(py), float64(b.Min.Y), float64(b.Max.Y-1)))
	return p.img.At(px, py)
}

// GetData implements Provider.
func (p *ImageProvider) GetData(x, y, maxSize float64) geo.Coordinate {
	x, y = ClampCoord(x, y, maxSize)

	r, g, b, _ := p.pixelAt(x, y).RGBA()
	// color.Color.RGBA returns 16-bit-scaled channels; rescale to 8-bit.
	r8, g8, b8 := float64(r>>8), float64(g>>8), float64(b>>8)

	if b8 >= r8 && b8 >= g8 {
		seaFactor := geo.Lerp(-1, 1, (255-b8)/255)
		return geo.Coordinate{X: x, Y: y, SeaFactor: seaFactor}
	}
	return geo.Coordinate{
		X: x, Y: y,
		SeaFactor:    1, // land sentinel > 0; exact value unspecified beyond ">0"
		UpliftFactor: g8 / 255,
		SlopeFactor:  r8 / 255,
	}
}

func (p *ImageProvider) Size() int          { return p.opts.Size }
func (p *ImageProvider) LOD() int           { return p.opts.LOD }
func (p *ImageProvider) Random() *rand.Rand { return p.rng }
func (p *ImageProvider) Seed() int64        { return p.opts.Seed }
