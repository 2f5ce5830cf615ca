package escpos

import (
	"io"
	"time"
)

// Printer service/characteristic UUIDs advertised by the supported
// thermal printers.
const (
	ServiceUUID        = "000018f0-0000-1000-8000-00805f9b34fb"
	CharacteristicUUID = "00002af1-0000-1000-8000-00805f9b34fb"
)

const (
	// DefaultChunkSize matches the GATT write limit of the printer.
	DefaultChunkSize = 512
	// DefaultChunkDelay paces writes so the printer's receive buffer
	// does not overflow.
	DefaultChunkDelay = 50 * time.Millisecond
)

// ChunkedWriter splits a receipt stream into fixed-size chunks with a pacing
// delay between them. Any write error aborts immediately; reconnecting is
// the caller's business.
type ChunkedWriter struct {
	W         io.Writer
	ChunkSize int
	Delay     time.Duration

	sleep func(time.Duration)
}

func NewChunkedWriter(w io.Writer) *ChunkedWriter {
	return &ChunkedWriter{W: w, ChunkSize: DefaultChunkSize, Delay: DefaultChunkDelay}
}

func (cw *ChunkedWriter) Write(p []byte) (int, error) {
	size := cw.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	pause := cw.sleep
	if pause == nil {
		pause = time.Sleep
	}

	written := 0
	for written < len(p) {
		end := written + size
		if end > len(p) {
			end = len(p)
		}
		n, err := cw.W.Write(p[written:end])
		written += n
		if err != nil {
			return written, err
		}
		if written < len(p) {
			pause(cw.Delay)
		}
	}
	return written, nil
}
