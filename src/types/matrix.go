package types

import (
	"errors"
	"fmt"
)

// Matrix is the shape of a matrix valued expression. Two matrices are the same
// type when their shapes match.
type Matrix struct {
	Rows int
	Cols int
}

// NewMatrix creates a matrix shape, both dimensions must be positive.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New("matrix dimensions must be positive")
	}
	return &Matrix{Rows: rows, Cols: cols}, nil
}

// Equal will check if the other type is a matrix of the same shape.
func (m *Matrix) Equal(other Type) bool {
	om, isMatrix := other.(*Matrix)
	return isMatrix && om.Rows == m.Rows && om.Cols == m.Cols
}

func (m *Matrix) String() string { return fmt.Sprintf("Matrix(%d, %d)", m.Rows, m.Cols) }

// Add requires both shapes to be equal and keeps the shape.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.elementwise("add", other)
}

// Sub requires both shapes to be equal and keeps the shape.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.elementwise("sub", other)
}

// Mul requires the left columns to match the right rows and yields a
// (left rows, right cols) shape.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.Cols != other.Rows {
		return nil, &Error{Reason: ShapeMismatch, Op: "mul", Args: []Type{m, other}}
	}
	return &Matrix{Rows: m.Rows, Cols: other.Cols}, nil
}

func (m *Matrix) elementwise(op string, other *Matrix) (*Matrix, error) {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return nil, &Error{Reason: ShapeMismatch, Op: op, Args: []Type{m, other}}
	}
	return &Matrix{Rows: m.Rows, Cols: m.Cols}, nil
}
