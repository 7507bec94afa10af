package sim

import (
	"errors"
	"io"
	"log"
)

// DrainReader reads and discards r in fixed-size chunks so an upstream
// writer never blocks. It returns silently when r reaches EOF and logs
// any other read error before returning. It never touches program
// state; run it on its own goroutine.
//
// Kept as a no-op placeholder for future bidirectional protocol
// support (e.g. accepting receiver commands on stdin).
func DrainReader(r io.Reader) {
	buf := make([]byte, 4096)
	for {
		if _, err := r.Read(buf); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("input drain stopped: %v", err)
			}
			return
		}
	}
}
