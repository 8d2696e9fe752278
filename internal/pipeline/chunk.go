package pipeline

import (
	"bufio"
	"io"
	"strings"
)

// ChunkReader splits a UTF-8 stream into chunks of a fixed number of runes.
type ChunkReader struct {
	r    *bufio.Reader
	size int
}

// NewChunkReader returns a reader yielding chunks of at most size runes.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if size < 1 {
		size = 1
	}
	return &ChunkReader{r: bufio.NewReader(r), size: size}
}

// Next returns the next chunk. Only the final chunk may be shorter than
// the configured size. Next returns io.EOF once no runes remain; a
// partially filled chunk is discarded if the underlying read fails.
func (c *ChunkReader) Next() (string, error) {
	var sb strings.Builder
	for i := 0; i < c.size; i++ {
		r, _, err := c.r.ReadRune()
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", io.EOF
			}
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
