package helpers

import (
	"io"
	"sync"
)

func AppendSafe[T any](m *sync.Mutex, slice []T, item T) []T {
	m.Lock()
	defer m.Unlock()
	return append(slice, item)
}

type ReadableWriter struct {
	Writer   io.Writer
	ReadChan chan string
}

func (w *ReadableWriter) Write(p []byte) (n int, err error) {
	w.ReadChan <- string(p)
	return w.Writer.Write(p)
}
