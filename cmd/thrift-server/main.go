// Command thrift-server runs the calculator example service over a
// framed TCP listener, the counterpart of the teacher's stund.
package main

import (
	"context"
	"flag"
	"net"

	"github.com/pion/logging"

	"github.com/pinchthrift/thrift"
	"github.com/pinchthrift/thrift/calculator"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:7913", "listen address")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	log := loggerFactory.NewLogger("thrift-server")

	srv := thrift.NewServer(thrift.ServerOptions{LoggerFactory: loggerFactory})
	calculator.Register(srv)

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Errorf("listen: %v", err)
		return
	}
	log.Infof("listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Errorf("accept: %v", err)
			return
		}
		go func() {
			if err := thrift.RunConnection(context.Background(), srv, conn); err != nil {
				log.Warnf("connection from %s: %v", conn.RemoteAddr(), err)
			}
		}()
	}
}
