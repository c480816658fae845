package thrift

import (
	"encoding/binary"
	"io"
)

// Channel is a byte source and sink a transport can frame messages
// over: a net.Conn satisfies it, and so does any other
// io.ReadWriteCloser (an in-memory pipe in tests, for instance).
// Mirrors the teacher's Connection interface in client.go.
type Channel interface {
	io.Reader
	io.Writer
	io.Closer
}

// FrameReader reads one message body at a time from a Channel.
type FrameReader interface {
	ReadFrame() ([]byte, error)
}

// FrameWriter writes one message body at a time to a Channel.
type FrameWriter interface {
	WriteFrame(body []byte) error
}

// Transport combines FrameReader, FrameWriter and Close, the minimal
// surface Client and Server need from either framing.
type Transport interface {
	FrameReader
	FrameWriter
	io.Closer
}

const frameLengthSize = 4

// FramedTransport prefixes every outbound message body with a 4-byte
// big-endian length and expects the same of inbound messages
// (SPEC_FULL.md §4.5). Each outbound frame is written as a single
// logical Write call, mirroring Message.WriteTo's one-shot write of its
// whole Raw buffer so a frame is never torn across partial writes at
// this layer.
type FramedTransport struct {
	ch      Channel
	maxSize int
}

// NewFramedTransport wraps ch. maxSize bounds the length prefix the
// reader will accept before allocating a body buffer; pass 0 to accept
// any non-negative length.
func NewFramedTransport(ch Channel, maxSize int) *FramedTransport {
	return &FramedTransport{ch: ch, maxSize: maxSize}
}

// ReadFrame reads one length-prefixed frame body. A clean EOF before
// any bytes are read is returned as io.EOF; an EOF mid-frame is
// ErrTruncatedFrame.
func (t *FramedTransport) ReadFrame() ([]byte, error) {
	var lenBuf [frameLengthSize]byte
	if _, err := io.ReadFull(t.ch, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedFrame
		}
		return nil, err
	}
	n := int32(binary.BigEndian.Uint32(lenBuf[:]))
	if n < 0 {
		return nil, NegativeSize{Field: "frame length", Value: int64(n)}
	}
	if t.maxSize > 0 && int(n) > t.maxSize {
		return nil, LimitExceeded{Field: "frame length", Observed: int64(n), Cap: int64(t.maxSize)}
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(t.ch, body); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedFrame
		}
		return nil, err
	}
	return body, nil
}

// WriteFrame writes body as one length-prefixed frame.
func (t *FramedTransport) WriteFrame(body []byte) error {
	buf := make([]byte, frameLengthSize+len(body))
	binary.BigEndian.PutUint32(buf, uint32(len(body)))
	copy(buf[frameLengthSize:], body)
	_, err := t.ch.Write(buf)
	return err
}

// Close closes the underlying Channel.
func (t *FramedTransport) Close() error { return t.ch.Close() }

// UnframedTransport passes message bodies through without any length
// prefix, reading whatever one underlying Read call returns as a
// single frame body — the legacy Thrift "buffered" transport mode.
type UnframedTransport struct {
	ch     Channel
	bufLen int
}

// NewUnframedTransport wraps ch. bufLen sizes the per-read buffer.
func NewUnframedTransport(ch Channel, bufLen int) *UnframedTransport {
	if bufLen <= 0 {
		bufLen = 4096
	}
	return &UnframedTransport{ch: ch, bufLen: bufLen}
}

// ReadFrame returns whatever bytes one Read call on the underlying
// Channel produces.
func (t *UnframedTransport) ReadFrame() ([]byte, error) {
	buf := make([]byte, t.bufLen)
	n, err := t.ch.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	return nil, err
}

// WriteFrame writes body verbatim.
func (t *UnframedTransport) WriteFrame(body []byte) error {
	_, err := t.ch.Write(body)
	return err
}

// Close closes the underlying Channel.
func (t *UnframedTransport) Close() error { return t.ch.Close() }
