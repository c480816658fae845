package thrift_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinchthrift/thrift"
	"github.com/pinchthrift/thrift/thrifttest"
)

func echoServer() *thrift.Server {
	srv := thrift.NewServer(thrift.ServerOptions{})
	srv.Handle("echo", func(_ context.Context, req thrift.Message) (thrift.Value, error) {
		return req.Payload, nil
	})
	return srv
}

func TestRunConnectionEchoesCall(t *testing.T) {
	srv := echoServer()
	ch := thrifttest.RunServer(t, srv)
	client, err := thrift.NewClient(thrift.ClientOptions{Channel: ch})
	require.NoError(t, err)

	payload := thrift.NewStruct(map[int16]thrift.Value{1: thrift.NewInt32(9)})
	reply, err := client.Call(thrift.TCall{Name: "echo", Payload: payload})
	require.NoError(t, err)
	assert.True(t, payload.Equal(reply))
}

func TestRunConnectionUnknownMethodReturnsRemoteException(t *testing.T) {
	srv := echoServer()
	ch := thrifttest.RunServer(t, srv)
	client, err := thrift.NewClient(thrift.ClientOptions{Channel: ch})
	require.NoError(t, err)

	_, err = client.Call(thrift.TCall{Name: "nope", Payload: thrift.NewStruct(nil)})
	var remote thrift.RemoteException
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Error(), "method not found")
}

func TestRunConnectionHandlerErrorReturnsRemoteException(t *testing.T) {
	srv := thrift.NewServer(thrift.ServerOptions{})
	srv.Handle("boom", func(_ context.Context, req thrift.Message) (thrift.Value, error) {
		return thrift.Value{}, assertError{}
	})
	ch := thrifttest.RunServer(t, srv)
	client, err := thrift.NewClient(thrift.ClientOptions{Channel: ch})
	require.NoError(t, err)

	_, err = client.Call(thrift.TCall{Name: "boom", Payload: thrift.NewStruct(nil)})
	var remote thrift.RemoteException
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Error(), "kaboom")
}

type assertError struct{}

func (assertError) Error() string { return "kaboom" }

func TestRunConnectionOnewayInvokesHandler(t *testing.T) {
	called := make(chan struct{}, 1)
	srv := thrift.NewServer(thrift.ServerOptions{})
	srv.Handle("fireAndForget", func(_ context.Context, req thrift.Message) (thrift.Value, error) {
		called <- struct{}{}
		return thrift.NewStruct(nil), nil
	})
	ch := thrifttest.RunServer(t, srv)
	client, err := thrift.NewClient(thrift.ClientOptions{Channel: ch})
	require.NoError(t, err)

	require.NoError(t, client.CallOneway(thrift.TCall{Name: "fireAndForget", Payload: thrift.NewStruct(nil)}))
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}
