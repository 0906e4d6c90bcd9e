package serialport

import "sync"

// MockTransport is an in-memory Transport for tests. Reads are served
// from scripted chunks and yield (0, nil) once drained, mirroring a
// quiet device; writes are recorded.
type MockTransport struct {
	mu       sync.Mutex
	chunks   [][]byte
	written  []byte
	closed   bool
	ReadErr  error
	WriteErr error
}

// NewMockTransport builds a mock whose reads return the given chunks
// in order.
func NewMockTransport(chunks ...[]byte) *MockTransport {
	return &MockTransport{chunks: chunks}
}

func (m *MockTransport) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(m.chunks) == 0 {
		return 0, nil
	}
	n := copy(p, m.chunks[0])
	if n == len(m.chunks[0]) {
		m.chunks = m.chunks[1:]
	} else {
		m.chunks[0] = m.chunks[0][n:]
	}
	return n, nil
}

func (m *MockTransport) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.written = append(m.written, p...)
	return len(p), nil
}

func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Written returns everything the session wrote so far.
func (m *MockTransport) Written() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.written))
	copy(out, m.written)
	return out
}

// Closed reports whether Close was called.
func (m *MockTransport) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
