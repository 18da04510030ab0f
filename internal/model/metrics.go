// Package model 定义 gowc 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// TotalLabel 是汇总行使用的固定标签。
const TotalLabel = "total"

// Metrics 表示单个文件（或汇总行）的统计结果。
//
// 注意：
// - Lines 统计的是 '\n' 的个数，而不是逻辑行数
// - Chars 统计解码后的 Unicode 标量值，因此 Chars <= Bytes
// - MaxLineLength 中 tab 会推进到下一个 8 的倍数列
type Metrics struct {
	Path          string `json:"path"`
	Lines         int64  `json:"lines"`
	Words         int64  `json:"words"`
	Chars         int64  `json:"chars"`
	Bytes         int64  `json:"bytes"`
	MaxLineLength int64  `json:"max_line_length"`
}

// Value 按指标类型取值。
func (m Metrics) Value(kind Kind) int64 {
	switch kind {
	case KindLines:
		return m.Lines
	case KindWords:
		return m.Words
	case KindChars:
		return m.Chars
	case KindBytes:
		return m.Bytes
	case KindMaxLineLength:
		return m.MaxLineLength
	default:
		return 0
	}
}

// Total 根据多行结果生成新的汇总行，不会修改输入。
// Lines/Words/Chars/Bytes 求和，MaxLineLength 取最大值。
func Total(rows []Metrics) Metrics {
	total := Metrics{Path: TotalLabel}
	for _, row := range rows {
		total.Lines += row.Lines
		total.Words += row.Words
		total.Chars += row.Chars
		total.Bytes += row.Bytes
		if row.MaxLineLength > total.MaxLineLength {
			total.MaxLineLength = row.MaxLineLength
		}
	}
	return total
}
