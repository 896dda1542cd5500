package mat2

import "golang.org/x/exp/constraints"

// Numeric captures element types with built-in addition, multiplication,
// equality and the usual identities (untyped 0 and 1 convert exactly).
// Row algebra (ScaleRow, AddScaledRow) and RREF validation require it.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Field narrows Numeric to types with exact division, as needed by
// Gauss-Jordan elimination. Integer types are excluded on purpose:
// truncating division silently breaks pivot normalization.
type Field interface {
	constraints.Float | constraints.Complex
}
