package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar shape has one element")
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestShape_Clone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assert.Equal(t, 2, s[0], "clone must not alias the original")
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{3, 1}, Shape{2, 3}.ComputeStrides())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
}

func TestDataType_Size(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
}

func TestCheckSameShape(t *testing.T) {
	a, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	b, err := NewRaw(Shape{3, 2}, Float32, CPU)
	require.NoError(t, err)

	require.NoError(t, CheckSameShape("add", a, a))

	err = CheckSameShape("add", a, b)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "add", shapeErr.Op)
}

func TestCheckRank2(t *testing.T) {
	m, err := NewRaw(Shape{2, 2}, Float32, CPU)
	require.NoError(t, err)
	v, err := NewRaw(Shape{4}, Float32, CPU)
	require.NoError(t, err)

	require.NoError(t, CheckRank2("matmul", m))

	var shapeErr *ShapeError
	require.ErrorAs(t, CheckRank2("matmul", v), &shapeErr)
	assert.Equal(t, "matmul", shapeErr.Op)
	assert.Nil(t, shapeErr.B)
}
