package snap

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/tswan-dev/snap/utils"
)

// Op identifies one image operation of the CLI surface.
type Op string

const (
	OpResize      Op = "resize"
	OpScale       Op = "scale"
	OpCrop        Op = "crop"
	OpSeamCarve   Op = "seam-carve"
	OpTint        Op = "tint"
	OpHue         Op = "hue"
	OpRotateLeft  Op = "rotate-left"
	OpRotateRight Op = "rotate-right"
	OpFlip        Op = "flip"
	OpMirrorX     Op = "mirror-x"
	OpMirrorY     Op = "mirror-y"
	OpTranspose   Op = "transpose"
	OpConvert     Op = "convert"
	OpInfo        Op = "info"
)

// validExtensions are the file types accepted when batch processing a directory.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".ppm", ".pnm"}

// Processor holds the resolved options of one invocation and applies the
// requested operation to images. The zero value is not useful; the CLI
// fills it from flags and the boundary guarantees positive dimensions and
// a resolved crop method whenever an axis must shrink.
type Processor struct {
	NewWidth   int
	NewHeight  int
	Scaling    ScaleMethod
	Crop       CropMethod
	CropX      CropMethod
	CropY      CropMethod
	CenterX    int
	CenterY    int
	RScale     float64
	GScale     float64
	BScale     float64
	Degrees    float64
	Prescale   bool
	FaceDetect bool
	Classifier string
	FaceAngle  float64
	Debug      bool
	Spinner    *utils.Spinner
}

// Ops describes the source and destination of one Execute call.
type Ops struct {
	Op       Op
	Src, Dst string
	Workers  int
}

// Apply runs the configured operation on the image in place.
func (p *Processor) Apply(op Op, img *Image) error {
	switch op {
	case OpResize:
		return img.Resize(p.NewWidth, p.NewHeight, p.Scaling, p.CropX, p.CropY)
	case OpScale:
		img.Scale(p.NewWidth, p.NewHeight, p.Scaling)
	case OpCrop:
		img.Crop(p.NewWidth, p.NewHeight, p.Crop, p.CenterX, p.CenterY)
	case OpSeamCarve:
		return p.seamCarve(img)
	case OpTint:
		img.ScaleRGB(p.RScale, p.GScale, p.BScale)
	case OpHue:
		img.HueShift(p.Degrees)
	case OpRotateLeft:
		img.RotateLeft()
	case OpRotateRight:
		img.RotateRight()
	case OpFlip:
		img.Flip()
	case OpMirrorX:
		img.MirrorX()
	case OpMirrorY:
		img.MirrorY()
	case OpTranspose:
		img.Transpose()
	case OpConvert, OpInfo:
		// Handled at the file boundary, nothing to mutate.
	default:
		return errors.Errorf("unknown operation %q", op)
	}
	return nil
}

// seamCarve runs the content-aware resize, optionally prescaling with a
// Lanczos filter so the carver only removes the remaining pixels.
func (p *Processor) seamCarve(img *Image) error {
	if p.Prescale && p.NewWidth > 0 && p.NewHeight > 0 &&
		p.NewWidth < img.Width() && p.NewHeight < img.Height() {
		p.prescale(img)
	}

	carver := NewCarver()
	carver.Debug = p.Debug

	if p.FaceDetect {
		if p.Classifier == "" {
			return errors.New("please specify a face classifier when using face detection")
		}
		fd, err := LoadFaceDetector(p.Classifier)
		if err != nil {
			return err
		}
		fd.Angle = p.FaceAngle
		carver.FaceDetector = fd
	}

	if err := carver.SeamCarve(img, p.NewWidth, p.NewHeight); err != nil {
		return err
	}
	if p.Debug {
		log.Printf("removed %d seams on the last carved axis", len(carver.Seams))
	}
	return nil
}

// prescale shrinks the image proportionally by the smaller scale factor,
// leaving the rest of the reduction to the carver.
func (p *Processor) prescale(img *Image) {
	w, h := float64(img.Width()), float64(img.Height())
	wsf := w / float64(p.NewWidth)
	hsf := h / float64(p.NewHeight)
	factor := math.Min(wsf, hsf)

	sw := int(math.Round(w / factor))
	sh := int(math.Round(h / factor))
	if sw >= img.Width() || sh >= img.Height() {
		return
	}

	res := imaging.Resize(img.ToNRGBA(), sw, sh, imaging.Lanczos)
	scaled := FromNRGBA(imgToNRGBA(res))
	scaled.SetFormat(img.Format())
	*img = *scaled
}

// Execute resolves the source (file, directory or URL), runs the operation
// and writes the result. Directories are processed concurrently with a
// bounded worker pool; every worker owns its image, so the single-threaded
// mutation contract of Image still holds.
func (p *Processor) Execute(op *Ops) error {
	src := op.Src

	if utils.IsValidUrl(src) {
		tmp, err := utils.DownloadImage(src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
		}
		if err != nil {
			return errors.Wrap(err, "failed to load the source image")
		}
		src = tmp.Name()
	}

	fi, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "failed to access the source image")
	}

	if fi.IsDir() {
		return p.executeDir(op, src)
	}
	return p.processFile(op.Op, src, op.Dst)
}

// result holds the relevant information about one processed image.
type result struct {
	path string
	err  error
}

func (p *Processor) executeDir(op *Ops, src string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrap(err, "failed to read the source directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return errors.Wrap(err, "failed to create the destination directory")
	}

	paths := make(chan string)
	results := make(chan result)

	workers := op.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				dst := filepath.Join(op.Dst, filepath.Base(path))
				results <- result{path: path, err: p.processFile(op.Op, path, dst)}
			}
		}()
	}

	go func() {
		for _, entry := range entries {
			if entry.IsDir() || !isValidExtension(entry.Name()) {
				continue
			}
			paths <- filepath.Join(src, entry.Name())
		}
		close(paths)
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for res := range results {
		if res.err != nil {
			log.Printf("%s %v",
				utils.DecorateText(res.path+":", utils.ErrorMessage),
				utils.DecorateText(res.err.Error(), utils.DefaultMessage))
			if firstErr == nil {
				firstErr = res.err
			}
		}
	}
	return firstErr
}

func (p *Processor) processFile(op Op, src, dst string) error {
	if op == OpConvert {
		return Convert(src, dst)
	}

	img, err := Open(src)
	if err != nil {
		return err
	}

	if op == OpInfo {
		fmt.Printf("%s: %dx%d, max intensity %d, format %s\n",
			src, img.Width(), img.Height(), img.MaxIntensity(), img.Format())
		return nil
	}

	if err := p.Apply(op, img); err != nil {
		return err
	}
	return Save(img, dst)
}

// ProcessPipe applies the operation to an image streamed through stdin and
// stdout. Native PPM input is detected by its magic token; anything else
// goes through the delegated decoder. The output encoding is keyed by ext.
func (p *Processor) ProcessPipe(op Op, r io.Reader, w io.Writer, ext string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read the piped image")
	}

	var img *Image
	if len(data) >= 2 && (string(data[:2]) == "P3" || string(data[:2]) == "P6") {
		img, err = DecodeBytes(data)
	} else {
		src, derr := imaging.Decode(bytes.NewReader(data))
		if derr != nil {
			return errors.Wrap(derr, "failed to decode the piped image")
		}
		img = FromImage(src)
	}
	if err != nil {
		return err
	}

	if op == OpInfo {
		fmt.Fprintf(w, "%dx%d, max intensity %d, format %s\n",
			img.Width(), img.Height(), img.MaxIntensity(), img.Format())
		return nil
	}

	if err := p.Apply(op, img); err != nil {
		return err
	}
	return EncodeTo(img, w, ext)
}

func isValidExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range validExtensions {
		if v == ext {
			return true
		}
	}
	return false
}
