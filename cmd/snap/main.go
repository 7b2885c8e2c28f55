package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/term"

	"github.com/tswan-dev/snap"
	"github.com/tswan-dev/snap/utils"
)

const helpBanner = `
┌─┐┌┐┌┌─┐┌─┐
└─┐│││├─┤├─┘
└─┘┘└┘┴ ┴┴

Image processing toolkit with content-aware resizing.
    Version: %s

Usage: snap <command> [flags]

Commands:
  resize        resize to the new width and height, scaling up and cropping down
  scale         resample to the new width and height
  crop          trim down to the new width and height
  seam-carve    content-aware resize to the new width and height
  tint          multiply each pixel by the given channel scalars
  hue           rotate the hue by the given degrees
  rotate-left   rotate 90 degrees counterclockwise
  rotate-right  rotate 90 degrees clockwise
  flip          rotate 180 degrees
  mirror-x      mirror about the horizontal axis
  mirror-y      mirror about the vertical axis
  transpose     transpose the pixel grid
  convert       re-encode keyed by the output extension
  info          print the image dimensions and format

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	source      = flag.String("in", pipeName, "Source path, directory, URL or - for stdin")
	destination = flag.String("out", pipeName, "Destination path, directory or - for stdout")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	scaleMethod = flag.String("method", "bilinear", "Scale method (nearest|bilinear)")
	cropMethod  = flag.String("crop", string(snap.CropRect), "Crop method")
	cropX       = flag.String("crop-x", "", "Crop method for the horizontal axis when resizing down")
	cropY       = flag.String("crop-y", "", "Crop method for the vertical axis when resizing down")
	centerX     = flag.Int("cx", -1, "Rectangular crop center offset on the x axis")
	centerY     = flag.Int("cy", -1, "Rectangular crop center offset on the y axis")
	rScale      = flag.Float64("r", 1.0, "Red channel scalar")
	gScale      = flag.Float64("g", 1.0, "Green channel scalar")
	bScale      = flag.Float64("b", 1.0, "Blue channel scalar")
	degrees     = flag.Float64("deg", 0.0, "Hue rotation in degrees")
	prescale    = flag.Bool("scale", false, "Proportional Lanczos prescale before carving")
	faceDetect  = flag.Bool("face", false, "Protect detected faces while carving")
	cascade     = flag.String("cc", "", "Cascade classifier file")
	faceAngle   = flag.Float64("angle", 0.0, "Plane rotated faces angle")
	debug       = flag.Bool("debug", false, "Log carving diagnostics")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, version())
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	op := snap.Op(os.Args[1])
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	proc := buildProcessor(op)

	if *source == pipeName || *destination == pipeName {
		runPipe(proc, op)
		return
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SNAP", utils.StatusMessage),
		utils.DecorateText("⇢ processing image...", utils.DefaultMessage))
	proc.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)

	showSpinner := op != snap.OpInfo && term.IsTerminal(int(os.Stderr.Fd()))
	if showSpinner {
		proc.Spinner.Start()
	}
	start := time.Now()

	err := proc.Execute(&snap.Ops{
		Op:      op,
		Src:     *source,
		Dst:     *destination,
		Workers: *workers,
	})
	if showSpinner {
		proc.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ SNAP", utils.StatusMessage),
			utils.DecorateText("⇢ done in "+utils.FormatTime(time.Since(start)), utils.SuccessMessage))
		proc.Spinner.Stop()
	}
	if err != nil {
		log.Fatalf(utils.DecorateText("Error processing the image: %v", utils.ErrorMessage), err)
	}
}

// buildProcessor validates the flag combination the chosen command needs
// and resolves it into processor options.
func buildProcessor(op snap.Op) *snap.Processor {
	switch op {
	case snap.OpResize, snap.OpScale, snap.OpCrop, snap.OpSeamCarve:
		if *newWidth <= 0 || *newHeight <= 0 {
			log.Fatalf(utils.DecorateText("Please provide a positive new width and height!\n", utils.ErrorMessage))
		}
	case snap.OpTint, snap.OpHue, snap.OpRotateLeft, snap.OpRotateRight,
		snap.OpFlip, snap.OpMirrorX, snap.OpMirrorY, snap.OpTranspose,
		snap.OpConvert, snap.OpInfo:
	default:
		flag.Usage()
		os.Exit(1)
	}

	if *faceDetect && len(*cascade) == 0 {
		log.Fatalf(utils.DecorateText("Please specify a face classifier when using the -face flag!\n", utils.ErrorMessage))
	}

	method, err := snap.ParseScaleMethod(*scaleMethod)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	crop, err := snap.ParseCropMethod(*cropMethod)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	// The resize command must arrive at the core with a resolved crop
	// method for every shrinking axis.
	var cx, cy snap.CropMethod
	if op == snap.OpResize {
		cx, cy = parseAxisCrops()
	}

	return &snap.Processor{
		NewWidth:   *newWidth,
		NewHeight:  *newHeight,
		Scaling:    method,
		Crop:       crop,
		CropX:      cx,
		CropY:      cy,
		CenterX:    *centerX,
		CenterY:    *centerY,
		RScale:     *rScale,
		GScale:     *gScale,
		BScale:     *bScale,
		Degrees:    *degrees,
		Prescale:   *prescale,
		FaceDetect: *faceDetect,
		Classifier: *cascade,
		FaceAngle:  *faceAngle,
		Debug:      *debug,
	}
}

func parseAxisCrops() (cx, cy snap.CropMethod) {
	var err error
	if *cropX != "" {
		if cx, err = snap.ParseCropMethod(*cropX); err != nil {
			log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
		}
	}
	if *cropY != "" {
		if cy, err = snap.ParseCropMethod(*cropY); err != nil {
			log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
		}
	}
	return cx, cy
}

func runPipe(proc *snap.Processor, op snap.Op) {
	if *source == pipeName && term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf(utils.DecorateText("No image data piped to stdin!\n", utils.ErrorMessage))
	}

	var in *os.File = os.Stdin
	if *source != pipeName {
		file, err := os.Open(*source)
		if err != nil {
			log.Fatalf(utils.DecorateText("Unable to open the source image: %v\n", utils.ErrorMessage), err)
		}
		defer file.Close()
		in = file
	}

	out := os.Stdout
	if *destination != pipeName {
		file, err := os.Create(*destination)
		if err != nil {
			log.Fatalf(utils.DecorateText("Unable to create the output image: %v\n", utils.ErrorMessage), err)
		}
		defer file.Close()
		out = file
	}

	if err := proc.ProcessPipe(op, in, out, outExt()); err != nil {
		log.Fatalf(utils.DecorateText("Error processing the image: %v", utils.ErrorMessage), err)
	}
}

func outExt() string {
	if *destination == pipeName {
		return ""
	}
	return filepath.Ext(*destination)
}

func version() string {
	if Version == "" {
		return "devel"
	}
	return Version
}
