package utils

import (
	"bytes"
	"runtime"
)

// Stack returns the stack of the calling goroutine with the first skip frames
// (each frame is a function line plus a file line) removed.
func Stack(skip int) []byte {
	buf := make([]byte, 8192)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, len(buf)*2)
	}

	lines := bytes.Split(buf, []byte("\n"))
	// lines[0] is the goroutine header
	drop := 1 + 2*skip
	if drop >= len(lines) {
		return buf
	}
	return bytes.Join(append([][]byte{lines[0]}, lines[drop:]...), []byte("\n"))
}
