package handler

import (
	"bytes"
	"sync"
)

const (
	// A starter farm view encodes to roughly 1KB
	initialBufferSize = 2 << 10
	// Buffers that grew past this while encoding a large farm are dropped
	maxPooledBufferSize = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer returns an empty buffer for encoding one response
func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless it has grown too large to keep around
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
