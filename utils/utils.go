package utils

import (
	"crypto/rand"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math/big"

	"github.com/nfnt/resize"
)

// RandomSuffix returns a random non-negative integer below max, in decimal.
// Used for collision-resistant upload filenames - no global lock needed.
func RandomSuffix(max int64) string {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		panic(err)
	}
	return n.Text(10)
}

// CreateThumb re-encodes the image from reader as a JPEG thumbnail with
// the given maximum dimension. Returns the number of bytes written.
func CreateThumb(size uint, reader io.Reader, writer io.Writer) (int64, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return 0, err
	}
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)
	counting := &countingWriter{writer: writer}
	if err = jpeg.Encode(counting, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return 0, err
	}
	return counting.count, nil
}

type countingWriter struct {
	writer io.Writer
	count  int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.writer.Write(p)
	c.count += int64(n)
	return n, err
}
