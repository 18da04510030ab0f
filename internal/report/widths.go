package report

import "gowc/internal/model"

// minColumnWidth 是多列输出时每列的最小宽度。
const minColumnWidth = 8

// ColumnWidths 记录每个指标列的打印宽度，只在一次渲染内有效。
type ColumnWidths map[model.Kind]int

// ComputeWidths 计算每一列的宽度，rows 需要包含汇总行。
//
// 规则：
// - 只选中一个指标时，宽度等于该列最大值的位数，不补最小宽度
// - 第一列宽度为 max(8, 位数)
// - 其余列宽度为 max(8, 位数+1)，保证与前一列之间至少一个空格
func ComputeWidths(rows []model.Metrics, selection model.Selection) ColumnWidths {
	kinds := selection.Kinds()
	widths := make(ColumnWidths, len(kinds))

	for i, kind := range kinds {
		var largest int64
		for _, row := range rows {
			if value := row.Value(kind); value > largest {
				largest = value
			}
		}

		digits := decimalDigits(largest)
		switch {
		case len(kinds) == 1:
			widths[kind] = digits
		case i == 0:
			widths[kind] = max(minColumnWidth, digits)
		default:
			widths[kind] = max(minColumnWidth, digits+1)
		}
	}
	return widths
}

func decimalDigits(value int64) int {
	digits := 1
	for value >= 10 {
		value /= 10
		digits++
	}
	return digits
}
