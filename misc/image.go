package misc

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// UnitToUint8 scales a [0, 1] value to a [0, 255] channel by truncation
func UnitToUint8(v float64) uint8 {
	return uint8(v * 255.0)
}

// countingWriter tracks how many bytes of the encoded image reached the file
type countingWriter struct {
	writer *bufio.Writer
	count  int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.writer.Write(p)
	cw.count += n
	return n, err
}

// SavePNG
// Encodes img as a png straight into fileName, replacing any existing file. A file that fails to encode or flush is
// removed so no partial image is left behind. Returns the number of bytes written.
func SavePNG(fileName string, img image.Image) (int, error) {
	if fileName == "" {
		return 0, errors.New("no filename supplied")
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, fmt.Errorf("unable to create image %s - %s", fileName, err)
	}

	output := &countingWriter{writer: bufio.NewWriter(file)}
	err = png.Encode(output, img)
	if err == nil {
		err = output.writer.Flush()
	}
	if err != nil {
		file.Close()
		os.Remove(fileName)
		return output.count, fmt.Errorf("unable to save image %s - %s", fileName, err)
	}

	err = file.Close()
	if err != nil {
		return output.count, fmt.Errorf("unable to close image %s - %s", fileName, err)
	}
	return output.count, nil
}
