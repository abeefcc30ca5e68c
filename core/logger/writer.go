package logger

import (
	"io"
	"sync"
)

// asyncWriter fans log lines out to all destinations from a single goroutine,
// keeping handler calls non-blocking up to the buffer capacity.
type asyncWriter struct {
	writers []io.Writer

	mu     sync.Mutex
	lines  chan []byte
	flush  chan chan error
	done   chan struct{}
	closed bool
	err    error
}

func newAsyncWriter(writers []io.Writer, bufLines int) *asyncWriter {
	if bufLines <= 0 {
		bufLines = 1024
	}
	w := &asyncWriter{
		writers: writers,
		lines:   make(chan []byte, bufLines),
		flush:   make(chan chan error),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *asyncWriter) loop() {
	defer close(w.done)
	for {
		select {
		case line, ok := <-w.lines:
			if !ok {
				return
			}
			w.writeAll(line)
		case ack := <-w.flush:
			w.drain()
			ack <- w.getErr()
		}
	}
}

func (w *asyncWriter) drain() {
	for {
		select {
		case line, ok := <-w.lines:
			if !ok {
				return
			}
			w.writeAll(line)
		default:
			return
		}
	}
}

// Write queues a line. When the queue is saturated the write falls through
// synchronously rather than dropping the line.
func (w *asyncWriter) Write(p []byte) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.getErr()
	}
	w.mu.Unlock()

	line := append([]byte(nil), p...)
	select {
	case w.lines <- line:
		return nil
	default:
		w.writeAll(line)
		return w.getErr()
	}
}

// Flush blocks until all queued lines reached the destinations.
func (w *asyncWriter) Flush() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.getErr()
	}
	w.mu.Unlock()

	ack := make(chan error, 1)
	w.flush <- ack
	return <-ack
}

// Close stops the writer goroutine after draining pending lines.
func (w *asyncWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.getErr()
	}
	w.closed = true
	close(w.lines)
	w.mu.Unlock()

	<-w.done
	return w.getErr()
}

func (w *asyncWriter) writeAll(p []byte) {
	for _, dst := range w.writers {
		if _, err := dst.Write(p); err != nil {
			w.setErr(err)
		}
	}
}

func (w *asyncWriter) getErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *asyncWriter) setErr(err error) {
	w.mu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.mu.Unlock()
}
