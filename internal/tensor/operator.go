package tensor

import "fmt"

// OpKind names an operation of the closed operator vocabulary.
type OpKind int

// Operator vocabulary.
const (
	// Binary tensor-tensor.
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMatMul

	// Binary tensor-scalar.
	OpScalarMul
	OpPow

	// Unary with an axes or shape argument.
	OpSum
	OpMean
	OpTranspose
	OpBroadcast

	// Pure unary.
	OpSigmoid
	OpReLU
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMatMul:
		return "MatMul"
	case OpScalarMul:
		return "ScalarMul"
	case OpPow:
		return "Pow"
	case OpSum:
		return "Sum"
	case OpMean:
		return "Mean"
	case OpTranspose:
		return "Transpose"
	case OpBroadcast:
		return "Broadcast"
	case OpSigmoid:
		return "Sigmoid"
	case OpReLU:
		return "ReLU"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// ParseOpKind returns the OpKind named s, as produced by OpKind.String.
func ParseOpKind(s string) (OpKind, bool) {
	for k := OpAdd; k <= OpReLU; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Arity returns the number of tensor operands of the operation.
func (k OpKind) Arity() int {
	if k <= OpMatMul {
		return 2
	}
	return 1
}

// Operator records how a derived Tensor was produced.
//
// The set of implementations is closed: *BinaryOp, *ScalarOp, *DimsOp and
// *UnaryOp. Code walking the graph can switch on the concrete type (or on
// Kind) exhaustively. An Operator is embedded in the Tensor it describes and
// its operands had shapes consistent with producing that tensor.
type Operator interface {
	// Kind returns the operation.
	Kind() OpKind

	// Operands returns the tensor operands in declared order.
	Operands() []*Tensor

	// String returns a description such as "Sum over axes: [0 1]".
	String() string

	operator()
}

// BinaryOp is a tensor-tensor operation: Add, Sub, Mul, Div or MatMul.
type BinaryOp struct {
	kind OpKind
	lhs  *Tensor
	rhs  *Tensor
}

// ScalarOp is a tensor-scalar operation: ScalarMul or Pow.
type ScalarOp struct {
	kind   OpKind
	x      *Tensor
	scalar float64
}

// DimsOp is a unary operation with an integer-list argument.
//
// The dims are the reduced axes for Sum and Mean, the permutation for
// Transpose, and the target shape for Broadcast.
type DimsOp struct {
	kind OpKind
	x    *Tensor
	dims []int
}

// UnaryOp is a pure unary operation: Sigmoid or ReLU.
type UnaryOp struct {
	kind OpKind
	x    *Tensor
}

// Compile-time checks that all variants implement Operator.
var (
	_ Operator = (*BinaryOp)(nil)
	_ Operator = (*ScalarOp)(nil)
	_ Operator = (*DimsOp)(nil)
	_ Operator = (*UnaryOp)(nil)
)

// Kind returns the operation.
func (op *BinaryOp) Kind() OpKind { return op.kind }

// Operands returns [Lhs, Rhs].
func (op *BinaryOp) Operands() []*Tensor { return []*Tensor{op.lhs, op.rhs} }

// Lhs returns the left operand.
func (op *BinaryOp) Lhs() *Tensor { return op.lhs }

// Rhs returns the right operand.
func (op *BinaryOp) Rhs() *Tensor { return op.rhs }

func (op *BinaryOp) String() string { return op.kind.String() }

func (*BinaryOp) operator() {}

// Kind returns the operation.
func (op *ScalarOp) Kind() OpKind { return op.kind }

// Operands returns [X].
func (op *ScalarOp) Operands() []*Tensor { return []*Tensor{op.x} }

// X returns the tensor operand.
func (op *ScalarOp) X() *Tensor { return op.x }

// Scalar returns the multiplier or exponent.
func (op *ScalarOp) Scalar() float64 { return op.scalar }

func (op *ScalarOp) String() string {
	if op.kind == OpPow {
		return "Scalar exponentiation"
	}
	return "Scalar multiplication"
}

func (*ScalarOp) operator() {}

// Kind returns the operation.
func (op *DimsOp) Kind() OpKind { return op.kind }

// Operands returns [X].
func (op *DimsOp) Operands() []*Tensor { return []*Tensor{op.x} }

// X returns the tensor operand.
func (op *DimsOp) X() *Tensor { return op.x }

// Dims returns a copy of the integer-list argument.
func (op *DimsOp) Dims() []int { return append([]int(nil), op.dims...) }

func (op *DimsOp) String() string {
	switch op.kind {
	case OpSum:
		return fmt.Sprintf("Sum over axes: %v", op.dims)
	case OpMean:
		return fmt.Sprintf("Mean over axes: %v", op.dims)
	case OpTranspose:
		return fmt.Sprintf("Transpose axes: %v", op.dims)
	default:
		return fmt.Sprintf("Broadcast to shape: %v", op.dims)
	}
}

func (*DimsOp) operator() {}

// Kind returns the operation.
func (op *UnaryOp) Kind() OpKind { return op.kind }

// Operands returns [X].
func (op *UnaryOp) Operands() []*Tensor { return []*Tensor{op.x} }

// X returns the tensor operand.
func (op *UnaryOp) X() *Tensor { return op.x }

func (op *UnaryOp) String() string {
	if op.kind == OpReLU {
		return "ReLU activation"
	}
	return "Sigmoid activation"
}

func (*UnaryOp) operator() {}
