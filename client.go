package thrift

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/pion/logging"
)

// ErrNoConnection means that ClientOptions.Channel is nil, mirroring
// the teacher's ErrNoConnection in client.go.
var ErrNoConnection = errors.New("thrift: no channel provided")

// ErrClientClosed indicates the Client has already been closed.
var ErrClientClosed = errors.New("thrift: client is closed")

// ClientOptions configure a Client, following the teacher's
// ClientOptions value-struct-plus-defaulting idiom in client.go.
type ClientOptions struct {
	Channel       Channel
	Protocol      ProtocolOptions
	MaxFrameSize  int
	LoggerFactory logging.LoggerFactory
}

// Client is a synchronous Thrift RPC client over a single framed
// channel. Unlike the teacher's Client, it tracks no transaction map:
// SPEC_FULL.md §5 rules out multiplexed requests on one channel, so
// concurrent Call invocations simply serialize behind callMu instead of
// being matched against a table of outstanding transactions.
type Client struct {
	transport Transport
	opts      ClientOptions
	logger    logging.LeveledLogger

	callMu sync.Mutex
	closed bool

	seqID int32
}

// Dial connects to address over network and wraps the connection in a
// framed Client, mirroring the teacher's package-level Dial helper.
func Dial(network, address string) (*Client, error) {
	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, err
	}
	return NewClient(ClientOptions{Channel: conn})
}

// NewClient builds a Client from options, applying defaults the same
// way the teacher's NewClient fills in ClientOptions zero values.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Channel == nil {
		return nil, ErrNoConnection
	}
	if opts.Protocol.MethodNameParser == nil {
		opts.Protocol = DefaultProtocolOptions()
	}
	if opts.LoggerFactory == nil {
		opts.LoggerFactory = logging.NewDefaultLoggerFactory()
	}
	return &Client{
		transport: NewFramedTransport(opts.Channel, opts.MaxFrameSize),
		opts:      opts,
		logger:    opts.LoggerFactory.NewLogger("thrift:client"),
	}, nil
}

// TCall is one outbound call: a method name and its request payload.
type TCall struct {
	Name    string
	Payload Value
}

func (c *Client) nextSeqID() int32 {
	return atomic.AddInt32(&c.seqID, 1)
}

// Call sends a Call message and blocks for the correlated reply,
// validating type and seqid per SPEC_FULL.md §4.6.
func (c *Client) Call(call TCall) (Value, error) {
	c.callMu.Lock()
	defer c.callMu.Unlock()
	if c.closed {
		return Value{}, ErrClientClosed
	}

	seqID := c.nextSeqID()
	req := Message{Name: call.Name, Type: MessageCall, SeqID: seqID, Payload: call.Payload}
	if err := c.transport.WriteFrame(EncodeMessage(req)); err != nil {
		return Value{}, err
	}

	body, err := c.transport.ReadFrame()
	if err != nil {
		return Value{}, err
	}
	reply, err := DecodeMessage(body, c.opts.Protocol)
	if err != nil {
		c.logger.Warnf("thrift: client: malformed reply: %v", err)
		return Value{}, err
	}
	if reply.SeqID != seqID {
		return Value{}, SeqIDMismatch{Expected: seqID, Got: reply.SeqID}
	}
	switch reply.Type {
	case MessageReply:
		return reply.Payload, nil
	case MessageException:
		return Value{}, RemoteException{Payload: reply.Payload}
	default:
		return Value{}, newWireFormatError("unexpected reply message type %s", reply.Type)
	}
}

// CallOneway sends a Oneway message and does not wait for a reply.
func (c *Client) CallOneway(call TCall) error {
	c.callMu.Lock()
	defer c.callMu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	req := Message{Name: call.Name, Type: MessageOneway, SeqID: c.nextSeqID(), Payload: call.Payload}
	return c.transport.WriteFrame(EncodeMessage(req))
}

// Close closes the underlying transport. Further Call/CallOneway calls
// return ErrClientClosed.
func (c *Client) Close() error {
	c.callMu.Lock()
	defer c.callMu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	c.closed = true
	if err := c.transport.Close(); err != nil {
		return fmt.Errorf("thrift: client close: %w", err)
	}
	return nil
}
