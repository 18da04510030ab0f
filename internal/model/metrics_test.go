package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTotalSumsAndMax 验证汇总行对计数求和、对最长行取最大值。
func TestTotalSumsAndMax(t *testing.T) {
	rows := []Metrics{
		{Path: "a", Lines: 2, Words: 3, Chars: 6, Bytes: 6, MaxLineLength: 3},
		{Path: "b", Lines: 10, Words: 1, Chars: 4, Bytes: 9, MaxLineLength: 12},
		{Path: "c", Lines: 0, Words: 0, Chars: 0, Bytes: 0, MaxLineLength: 0},
	}

	total := Total(rows)

	assert.Equal(t, Metrics{
		Path:          TotalLabel,
		Lines:         12,
		Words:         4,
		Chars:         10,
		Bytes:         15,
		MaxLineLength: 12,
	}, total)
	assert.Equal(t, "a", rows[0].Path, "input rows must not be mutated")
}

// TestDefaultSelection 验证空选择退化为 lines/words/bytes。
func TestDefaultSelection(t *testing.T) {
	selection := NewSelection()

	require.True(t, selection.Default)
	assert.Equal(t, []Kind{KindLines, KindWords, KindBytes}, selection.Kinds())
	assert.False(t, selection.Has(KindChars))
	assert.False(t, selection.Has(KindMaxLineLength))
}

// TestSelectionCanonicalOrder 验证输出顺序与传入顺序无关。
func TestSelectionCanonicalOrder(t *testing.T) {
	selection := NewSelection(KindMaxLineLength, KindChars, KindLines)

	assert.False(t, selection.Default)
	assert.Equal(t, []Kind{KindLines, KindChars, KindMaxLineLength}, selection.Kinds())
	assert.Equal(t, 3, selection.Len())
	assert.Equal(t, "lines,chars,max_line_length", selection.String())
}

func TestMetricsValue(t *testing.T) {
	m := Metrics{Lines: 1, Words: 2, Chars: 3, Bytes: 4, MaxLineLength: 5}

	for i, kind := range CanonicalOrder {
		assert.Equal(t, int64(i+1), m.Value(kind), kind.String())
	}
}
