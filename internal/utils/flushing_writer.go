package utils

import "io"

// flushableWriter is the optional interface buffered writers expose.
type flushableWriter interface {
	Flush() error
}

// FlushingWriter pushes each progress line through buffered writers
// immediately, so CI logs show command output as it happens.
type FlushingWriter struct {
	writer io.Writer
}

// NewFlushingWriter wraps the provided writer; every write is flushed when the writer supports it.
func NewFlushingWriter(writer io.Writer) io.Writer {
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushable, supportsFlush := flushingWriter.writer.(flushableWriter); supportsFlush {
		if flushError := flushable.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
