// Command thrift-client issues one calculator.compute call against a
// thrift-server instance, the counterpart of the teacher's stun-client.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/pion/logging"

	"github.com/pinchthrift/thrift"
	"github.com/pinchthrift/thrift/calculator"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:7913", "server address")
	a := flag.Int("a", 1, "left operand")
	b := flag.Int("b", 1, "right operand")
	op := flag.String("op", "plus", "plus, minus, or div")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	log := loggerFactory.NewLogger("thrift-client")

	operation, err := parseOperation(*op)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Errorf("dial: %v", err)
		os.Exit(1)
	}
	client, err := thrift.NewClient(thrift.ClientOptions{Channel: conn, LoggerFactory: loggerFactory})
	if err != nil {
		log.Errorf("new client: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	req := calculator.CalcRequest{A: int32(*a), B: int32(*b), Op: operation}
	reply, err := client.Call(thrift.TCall{Name: calculator.MethodCompute, Payload: thrift.Pinch(&req)})
	if err != nil {
		log.Errorf("call: %v", err)
		os.Exit(1)
	}

	var result calculator.CalcResult
	if err := thrift.Unpinch(reply, &result); err != nil {
		log.Errorf("decode reply: %v", err)
		os.Exit(1)
	}
	if result.ResultSet {
		fmt.Println(result.Result)
		return
	}
	log.Errorf("remote error: %s", result.Err)
	os.Exit(1)
}

func parseOperation(s string) (calculator.Operation, error) {
	switch s {
	case "plus":
		return calculator.OperationPlus, nil
	case "minus":
		return calculator.OperationMinus, nil
	case "div":
		return calculator.OperationDiv, nil
	default:
		return 0, fmt.Errorf("unknown op %q", s)
	}
}
