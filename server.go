package thrift

import (
	"context"
	"errors"
	"io"

	"github.com/pion/logging"
)

// Handler processes one decoded Call/Oneway Message and returns the
// reply payload. Returning an error turns into an Exception message
// wrapping HandlerError; Handler is never invoked for messages of type
// Reply or Exception, since a well-formed client never sends those.
type Handler func(ctx context.Context, req Message) (Value, error)

// ServerOptions configure a Server, mirroring the teacher's
// Server{Addr, Logger, LogAllErrors} struct in server.go, generalized
// to carry a name-routed handler table instead of a single hardcoded
// Binding handler.
type ServerOptions struct {
	Protocol      ProtocolOptions
	MaxFrameSize  int
	LoggerFactory logging.LoggerFactory
}

// Server routes incoming Call/Oneway messages by method name. A Server
// value, once its handlers are registered, is immutable and safe to
// share across connections (SPEC_FULL.md §5).
type Server struct {
	handlers map[string]Handler
	opts     ServerOptions
	logger   logging.LeveledLogger
}

// NewServer builds an empty Server; register handlers with Handle
// before calling RunConnection.
func NewServer(opts ServerOptions) *Server {
	if opts.Protocol.MethodNameParser == nil {
		opts.Protocol = DefaultProtocolOptions()
	}
	if opts.LoggerFactory == nil {
		opts.LoggerFactory = logging.NewDefaultLoggerFactory()
	}
	return &Server{
		handlers: make(map[string]Handler),
		opts:     opts,
		logger:   opts.LoggerFactory.NewLogger("thrift:server"),
	}
}

// Handle registers h for method name.
func (s *Server) Handle(name string, h Handler) {
	s.handlers[name] = h
}

const (
	codeMethodNotFound int32 = 1
	codeHandlerError   int32 = 2
)

// RunConnection reads framed messages from ch, dispatches each to the
// matching Handler, and writes back the reply, until a clean EOF or ctx
// is done. Per SPEC_FULL.md §1, spawning a goroutine per accepted
// connection is the caller's job — RunConnection processes exactly one
// connection, sequentially, on the calling goroutine.
func RunConnection(ctx context.Context, s *Server, ch Channel) error {
	transport := NewFramedTransport(ch, s.opts.MaxFrameSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := transport.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		req, err := DecodeMessage(body, s.opts.Protocol)
		if err != nil {
			s.logger.Warnf("thrift: server: malformed message: %v", err)
			continue
		}
		if req.Type == MessageReply || req.Type == MessageException {
			s.logger.Warnf("thrift: server: unexpected message type %s from client", req.Type)
			continue
		}
		reply := s.dispatch(ctx, req)
		if req.Type == MessageOneway {
			continue
		}
		if err := transport.WriteFrame(EncodeMessage(reply)); err != nil {
			return err
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req Message) Message {
	h, ok := s.handlers[req.Name]
	if !ok {
		s.logger.Warnf("thrift: server: no handler for method %q", req.Name)
		return Message{
			Name:    req.Name,
			Type:    MessageException,
			SeqID:   req.SeqID,
			Payload: newExceptionPayload("method not found", codeMethodNotFound),
		}
	}
	payload, err := h(ctx, req)
	if err != nil {
		s.logger.Errorf("thrift: server: handler %q failed: %v", req.Name, err)
		return Message{
			Name:    req.Name,
			Type:    MessageException,
			SeqID:   req.SeqID,
			Payload: newExceptionPayload(HandlerError{Reason: err.Error()}.Error(), codeHandlerError),
		}
	}
	return Message{Name: req.Name, Type: MessageReply, SeqID: req.SeqID, Payload: payload}
}
