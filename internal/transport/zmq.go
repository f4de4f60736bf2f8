package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-zeromq/zmq4"

	"github.com/tldr-it-stepankutaj/byteproc/internal/app"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

// ZMQSource receives one message from a ZeroMQ PULL socket.
type ZMQSource struct {
	sock zmq4.Socket
}

func NewZMQSource(ctx context.Context, cfg app.Config) (*ZMQSource, error) {
	sock := zmq4.NewPull(ctx,
		zmq4.WithTimeout(cfg.ZMQReceiveTimeout),
		zmq4.WithDialerRetry(cfg.ZMQReconnectInterval),
		zmq4.WithDialerMaxRetries(cfg.ZMQMaxReconnectAttempts),
	)
	if err := attach(sock, cfg.InputZMQSocket, cfg.InputZMQBind); err != nil {
		return nil, err
	}
	return &ZMQSource{sock: sock}, nil
}

func (s *ZMQSource) Receive() (string, error) {
	msg, err := s.sock.Recv()
	if err != nil {
		return "", fmt.Errorf("%w: zmq receive: %v", processor.ErrTransport, err)
	}
	return strings.TrimSpace(string(msg.Bytes())), nil
}

func (s *ZMQSource) Close() error { return s.sock.Close() }

// ZMQSink sends one message over a ZeroMQ PUSH socket.
type ZMQSink struct {
	sock zmq4.Socket
}

func NewZMQSink(ctx context.Context, cfg app.Config) (*ZMQSink, error) {
	sock := zmq4.NewPush(ctx,
		zmq4.WithTimeout(cfg.ZMQSendTimeout),
		zmq4.WithDialerRetry(cfg.ZMQReconnectInterval),
		zmq4.WithDialerMaxRetries(cfg.ZMQMaxReconnectAttempts),
	)
	if err := attach(sock, cfg.OutputZMQSocket, cfg.OutputZMQBind); err != nil {
		return nil, err
	}
	return &ZMQSink{sock: sock}, nil
}

func (s *ZMQSink) Send(hexText string) error {
	if err := s.sock.Send(zmq4.NewMsgString(hexText)); err != nil {
		return fmt.Errorf("%w: zmq send: %v", processor.ErrTransport, err)
	}
	return nil
}

func (s *ZMQSink) Close() error { return s.sock.Close() }

// attach binds or connects sock to endpoint per the *_zmq_bind setting.
func attach(sock zmq4.Socket, endpoint string, bind bool) error {
	var err error
	if bind {
		err = sock.Listen(endpoint)
	} else {
		err = sock.Dial(endpoint)
	}
	if err != nil {
		_ = sock.Close()
		return fmt.Errorf("%w: zmq attach %s: %v", processor.ErrTransport, endpoint, err)
	}
	return nil
}
