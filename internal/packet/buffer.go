package packet

import "sync/atomic"

/*
A SharedBuffer holds the compressed payload of a coded packet. Ownership is
tracked by reference counting: Hold() increments the count by 1, Release()
decrements it by 1. The done function is called exactly once, when the count
reaches 0, and returns the payload to whoever allocated it (e.g. a demuxer's
buffer pool).

Example usage:

	func consumer(buf *SharedBuffer) {
		defer buf.Release() // Ensure the shared buffer will be released.
		data := buf.Bytes()
		// Decode data...
	}

	func producer() {
		data := readPayload()
		buf := NewSharedBuffer(data, 1, func() { recycle(data) })
		consumer(buf)
	}
*/
type SharedBuffer struct {
	data []byte

	count int32
	done  func()
}

func NewSharedBuffer(data []byte, count int, done func()) *SharedBuffer {
	return &SharedBuffer{data, int32(count), done}
}

// Bytes returns the underlying byte buffer, or nil once released.
func (buf *SharedBuffer) Bytes() []byte {
	if buf == nil {
		return nil
	}
	return buf.data
}

// Increments the hold count.
func (buf *SharedBuffer) Hold() {
	atomic.AddInt32(&buf.count, 1)
}

// Decrements the hold count. When the hold count reaches zero, the underlying
// byte buffer will be released. Releasing past zero is a no-op.
func (buf *SharedBuffer) Release() {
	if buf == nil {
		return
	}
	newCount := atomic.AddInt32(&buf.count, -1)
	if newCount == 0 {
		if buf.done != nil {
			buf.done()
		}
		buf.data = nil
	}
}

// Held reports whether the buffer has outstanding holds.
func (buf *SharedBuffer) Held() bool {
	if buf == nil {
		return false
	}
	return atomic.LoadInt32(&buf.count) > 0
}
