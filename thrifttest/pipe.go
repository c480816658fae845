// Package thrifttest contains helpers for testing Thrift clients and
// servers, the counterpart of the teacher's stuntest package.
package thrifttest

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinchthrift/thrift"
)

// Pipe returns two connected thrift.Channel halves backed by net.Pipe,
// replacing the teacher's stuntest.NewUDPServer real-socket fixture with
// an in-memory one: a framed stream transport has no notion of a
// packet-addressed peer the way a PacketConn-based STUN fixture does, so
// the fixture here is a plain connected pair rather than an address plus
// a background goroutine.
func Pipe() (client, server thrift.Channel) {
	c, s := net.Pipe()
	return c, s
}

// RunServer starts thrift.RunConnection against one half of an in-memory
// pipe in a background goroutine and returns the other half for a test
// to drive as a Client. Teardown is registered with t.Cleanup: it closes
// the returned half, which ends RunConnection with a clean EOF, and
// waits for the server goroutine to return.
func RunServer(t *testing.T, srv *thrift.Server) thrift.Channel {
	t.Helper()
	clientSide, serverSide := Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = thrift.RunConnection(context.Background(), srv, serverSide)
	}()
	t.Cleanup(func() {
		require.NoError(t, clientSide.Close())
		<-done
	})
	return clientSide
}

// TCPLoopback starts thrift.RunConnection against every connection
// accepted on an ephemeral loopback TCP port, mirroring the teacher's
// ListenUDPAndServe for a connection-oriented transport, and returns the
// listener's address. The listener is closed by a t.Cleanup func.
func TCPLoopback(t *testing.T, srv *thrift.Server) net.Addr {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				_ = thrift.RunConnection(context.Background(), srv, conn)
			}()
		}
	}()
	t.Cleanup(func() { _ = ln.Close() })
	return ln.Addr()
}
