package snap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatError reports a malformed native image stream: a bad header,
// unparsable dimensions or a pixel payload of the wrong size.
// Parsing failures propagate immediately with no partial state.
type FormatError struct {
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return "snap: invalid image data: " + e.Reason
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// Decode reads a native PPM stream (ASCII P3 or binary P6) into an image.
// The header is the magic token, a width/height line and a max-intensity
// line, with # comment lines allowed in between; pixel data follows
// row-major top-to-bottom/left-to-right, three samples per pixel. The
// sample count must equal width*height*3 exactly.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := readHeaderLine(br, false)
	if err != nil {
		return nil, formatErrorf("missing magic token: %v", err)
	}

	var format Format
	switch magic {
	case "P3":
		format = FormatP3
	case "P6":
		format = FormatP6
	default:
		return nil, formatErrorf("unsupported magic token %q", magic)
	}

	width, height, maxIntensity, err := parseHeader(br)
	if err != nil {
		return nil, err
	}

	var red, green, blue []int
	switch format {
	case FormatP3:
		red, green, blue, err = readASCIISamples(br, width, height)
	case FormatP6:
		red, green, blue, err = readBinarySamples(br, width, height)
	}
	if err != nil {
		return nil, err
	}

	redM, err := MatrixFromSlice(width, height, red)
	if err != nil {
		return nil, err
	}
	greenM, err := MatrixFromSlice(width, height, green)
	if err != nil {
		return nil, err
	}
	blueM, err := MatrixFromSlice(width, height, blue)
	if err != nil {
		return nil, err
	}
	return ImageFromChannels(redM, greenM, blueM, maxIntensity, format)
}

// DecodeBytes decodes an in-memory native PPM buffer.
func DecodeBytes(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// readHeaderLine returns the next non-empty header line, optionally
// skipping # comment lines.
func readHeaderLine(br *bufio.Reader, skipComments bool) (string, error) {
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !(skipComments && strings.HasPrefix(trimmed, "#")) {
			return trimmed, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func parseHeader(br *bufio.Reader) (width, height, maxIntensity int, err error) {
	dims, err := readHeaderLine(br, true)
	if err != nil {
		return 0, 0, 0, formatErrorf("missing dimensions line: %v", err)
	}
	fields := strings.Fields(dims)
	if len(fields) < 2 {
		return 0, 0, 0, formatErrorf("malformed dimensions line %q", dims)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, formatErrorf("invalid width %q", fields[0])
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, formatErrorf("invalid height %q", fields[1])
	}
	if width < 0 || height < 0 {
		return 0, 0, 0, formatErrorf("negative dimensions %dx%d", width, height)
	}

	intensity, err := readHeaderLine(br, true)
	if err != nil {
		return 0, 0, 0, formatErrorf("missing max intensity line: %v", err)
	}
	maxIntensity, err = strconv.Atoi(strings.TrimSpace(intensity))
	if err != nil {
		return 0, 0, 0, formatErrorf("invalid max intensity %q", intensity)
	}
	return width, height, maxIntensity, nil
}

func readASCIISamples(br *bufio.Reader, width, height int) (red, green, blue []int, err error) {
	expected := width * height * 3
	samples := make([]int, 0, expected)

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 64*1024), 1<<24)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, nil, nil, formatErrorf("invalid pixel token %q", scanner.Text())
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, formatErrorf("reading pixel data: %v", err)
	}
	if len(samples) != expected {
		return nil, nil, nil, formatErrorf("got %d pixel values, want %d", len(samples), expected)
	}

	red = make([]int, 0, width*height)
	green = make([]int, 0, width*height)
	blue = make([]int, 0, width*height)
	for i := 0; i < len(samples); i += 3 {
		red = append(red, samples[i])
		green = append(green, samples[i+1])
		blue = append(blue, samples[i+2])
	}
	return red, green, blue, nil
}

func readBinarySamples(br *bufio.Reader, width, height int) (red, green, blue []int, err error) {
	raw, err := io.ReadAll(br)
	if err != nil {
		return nil, nil, nil, formatErrorf("reading pixel data: %v", err)
	}
	expected := width * height * 3
	if len(raw) != expected {
		return nil, nil, nil, formatErrorf("binary pixel data is %d bytes, want %d", len(raw), expected)
	}

	red = make([]int, 0, width*height)
	green = make([]int, 0, width*height)
	blue = make([]int, 0, width*height)
	for i := 0; i < len(raw); i += 3 {
		red = append(red, int(raw[i]))
		green = append(green, int(raw[i+1]))
		blue = append(blue, int(raw[i+2]))
	}
	return red, green, blue, nil
}

// Encode writes the image in its native serialization form.
func (img *Image) Encode(w io.Writer) error {
	return img.EncodeFormat(w, img.format)
}

// EncodeFormat writes the image in the given serialization form.
func (img *Image) EncodeFormat(w io.Writer, format Format) error {
	bw := bufio.NewWriter(w)
	var err error
	switch format {
	case FormatP3:
		err = img.writeASCII(bw)
	default:
		err = img.writeBinary(bw)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (img *Image) writeASCII(w *bufio.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", img.width, img.height, img.maxIntensity); err != nil {
		return err
	}
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			if _, err := fmt.Fprintf(w, "%d %d %d", px.R, px.G, px.B); err != nil {
				return err
			}
			if col < img.width-1 {
				if err := w.WriteByte(' '); err != nil {
					return err
				}
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (img *Image) writeBinary(w *bufio.Writer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", img.width, img.height, img.maxIntensity); err != nil {
		return err
	}
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.pixelAt(row, col)
			if _, err := w.Write([]byte{uint8(px.R), uint8(px.G), uint8(px.B)}); err != nil {
				return err
			}
		}
	}
	return nil
}
