// Package calculator is a small example Thrift service used to exercise
// the core codec and RPC layers end to end, the counterpart of the
// teacher's own Binding-method STUN server wired up over a real
// transport rather than exercised attribute-by-attribute.
package calculator

import (
	"context"
	"errors"

	"github.com/pinchthrift/thrift"
)

// Operation selects the arithmetic CalcRequest performs.
type Operation int32

// Declared Operation variants.
const (
	OperationPlus  Operation = 1
	OperationMinus Operation = 2
	OperationDiv   Operation = 3
)

var operationNames = thrift.EnumTable[Operation]{
	OperationPlus:  "Plus",
	OperationMinus: "Minus",
	OperationDiv:   "Div",
}

func (o Operation) String() string { return operationNames.String(o) }

// ErrDivideByZero is returned by Compute, and reported back to the
// client through CalcResult.Error rather than as a RemoteException, per
// SPEC_FULL.md §4.10's scenario for a recoverable application error.
var ErrDivideByZero = errors.New("div by zero")

// CalcRequest is {1: A i32, 2: B i32, 3: Op Operation}.
type CalcRequest struct {
	A  int32
	B  int32
	Op Operation
}

// TypeName implements thrift.Pinchable.
func (CalcRequest) TypeName() string { return "CalcRequest" }

// calcRequestDescriptor is CalcRequest's field table, built once and
// interpreted generically by thrift.PinchWith/thrift.UnpinchWith
// (SPEC_FULL.md §4.4, §9).
var calcRequestDescriptor = thrift.Descriptor{
	{
		ID: 1, Name: "A", Type: thrift.TTypeInt32,
		Get: func(r any) (thrift.Value, bool) { return thrift.NewInt32(r.(*CalcRequest).A), true },
		Set: func(r any, v thrift.Value) error {
			i, _ := v.AsInt32()
			r.(*CalcRequest).A = i
			return nil
		},
	},
	{
		ID: 2, Name: "B", Type: thrift.TTypeInt32,
		Get: func(r any) (thrift.Value, bool) { return thrift.NewInt32(r.(*CalcRequest).B), true },
		Set: func(r any, v thrift.Value) error {
			i, _ := v.AsInt32()
			r.(*CalcRequest).B = i
			return nil
		},
	},
	{
		ID: 3, Name: "Op", Type: thrift.TTypeInt32,
		Get: func(r any) (thrift.Value, bool) { return thrift.NewInt32(int32(r.(*CalcRequest).Op)), true },
		Set: func(r any, v thrift.Value) error {
			i, _ := v.AsInt32()
			if !operationNames.Valid(Operation(i)) {
				return thrift.UnknownEnum{Type: "Operation", Value: i}
			}
			r.(*CalcRequest).Op = Operation(i)
			return nil
		},
	},
}

// PinchFields implements thrift.Pinchable.
func (r *CalcRequest) PinchFields() map[int16]thrift.Value {
	return thrift.PinchWith(calcRequestDescriptor, r)
}

// UnpinchFields implements thrift.Pinchable.
func (r *CalcRequest) UnpinchFields(fields map[int16]thrift.Value) error {
	return thrift.UnpinchWith(calcRequestDescriptor, fields, r, "CalcRequest")
}

// CalcResult is the union-shaped {1: optional Result i32, 2: optional
// Error string}: exactly one of Result or Err is meaningful, selected by
// ResultSet.
type CalcResult struct {
	Result    int32
	Err       string
	ResultSet bool
}

// TypeName implements thrift.Pinchable.
func (CalcResult) TypeName() string { return "CalcResult" }

// calcResultDescriptor is CalcResult's field table. Both fields are
// Optional since exactly one, never both, is present on the wire;
// requireUnion enforces that invariant before UnpinchWith runs, since the
// generic driver has no notion of a union's "exactly one" constraint.
var calcResultDescriptor = thrift.Descriptor{
	{
		ID: 1, Name: "Result", Type: thrift.TTypeInt32, Optional: true,
		Get: func(r any) (thrift.Value, bool) {
			res := r.(*CalcResult)
			return thrift.NewInt32(res.Result), res.ResultSet
		},
		Set: func(r any, v thrift.Value) error {
			i, _ := v.AsInt32()
			*r.(*CalcResult) = CalcResult{Result: i, ResultSet: true}
			return nil
		},
	},
	{
		ID: 2, Name: "Error", Type: thrift.TTypeBinary, Optional: true,
		Get: func(r any) (thrift.Value, bool) {
			res := r.(*CalcResult)
			return thrift.NewBinary([]byte(res.Err)), !res.ResultSet
		},
		Set: func(r any, v thrift.Value) error {
			b, _ := v.AsBinary()
			*r.(*CalcResult) = CalcResult{Err: string(b)}
			return nil
		},
	},
}

// PinchFields implements thrift.Pinchable.
func (r *CalcResult) PinchFields() map[int16]thrift.Value {
	return thrift.PinchWith(calcResultDescriptor, r)
}

// UnpinchFields implements thrift.Pinchable.
func (r *CalcResult) UnpinchFields(fields map[int16]thrift.Value) error {
	if err := requireUnion(fields); err != nil {
		return err
	}
	return thrift.UnpinchWith(calcResultDescriptor, fields, r, "CalcResult")
}

func requireUnion(fields map[int16]thrift.Value) error {
	_, hasResult := fields[1]
	_, hasErr := fields[2]
	switch {
	case hasResult == hasErr:
		return thrift.BadUnion{Struct: "CalcResult", Reasons: []string{"exactly one of Result, Error must be present"}}
	default:
		return nil
	}
}

// ResultOf builds the success case of CalcResult.
func ResultOf(v int32) CalcResult { return CalcResult{Result: v, ResultSet: true} }

// ErrorOf builds the failure case of CalcResult.
func ErrorOf(msg string) CalcResult { return CalcResult{Err: msg} }

// Compute performs req's operation, returning ErrDivideByZero for a
// zero-divisor Div rather than panicking the way the bare Go /
// operator would.
func Compute(req CalcRequest) (int32, error) {
	switch req.Op {
	case OperationPlus:
		return req.A + req.B, nil
	case OperationMinus:
		return req.A - req.B, nil
	case OperationDiv:
		if req.B == 0 {
			return 0, ErrDivideByZero
		}
		return req.A / req.B, nil
	default:
		return 0, thrift.UnknownEnum{Type: "Operation", Value: int32(req.Op)}
	}
}

const MethodCompute = "compute"

// NewHandler builds a thrift.Handler wrapping Compute. Register attaches
// it to a Server under MethodCompute.
func NewHandler() thrift.Handler {
	return func(_ context.Context, req thrift.Message) (thrift.Value, error) {
		var in CalcRequest
		if err := thrift.Unpinch(req.Payload, &in); err != nil {
			return thrift.Value{}, err
		}
		v, err := Compute(in)
		var result CalcResult
		if err != nil {
			result = ErrorOf(err.Error())
		} else {
			result = ResultOf(v)
		}
		return thrift.Pinch(&result), nil
	}
}

// Register attaches the calculator service to srv under MethodCompute.
func Register(srv *thrift.Server) {
	srv.Handle(MethodCompute, NewHandler())
}
