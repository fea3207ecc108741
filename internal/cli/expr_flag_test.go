package cli

import (
	"testing"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprFlag_StoresCanonicalValue(t *testing.T) {
	var f exprFlag
	require.NoError(t, f.Set("05\t2 * * *"))

	assert.Equal(t, "5 2 * * *", f.String())
	assert.Equal(t, cronexpr.ShapeDay, f.shape)
	assert.Equal(t, "expr", f.Type())
}

func TestExprFlag_Rejects(t *testing.T) {
	tests := map[string]string{
		"malformed":    "0 5 * *",
		"out of range": "60 * * * *",
		"unsupported":  "0 5 1 * 1",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var f exprFlag
			assert.Error(t, f.Set(input))
			assert.Empty(t, f.String())
		})
	}
}

func TestShapeFlag(t *testing.T) {
	var f shapeFlag
	require.NoError(t, f.Set("month"))
	assert.Equal(t, "month", f.String())

	assert.Error(t, f.Set("fortnight"))
	assert.Equal(t, "month", f.String())
}

func TestJoinExprArgs(t *testing.T) {
	assert.Equal(t, "0 5 * * 1", joinExprArgs([]string{"0 5 * * 1"}))
	assert.Equal(t, "0 5 * * 1", joinExprArgs([]string{"0", "5", "*", "*", "1"}))
}
