package model

import "strings"

// Kind 表示一种可输出的统计指标。
type Kind uint8

const (
	KindLines Kind = 1 << iota
	KindWords
	KindChars
	KindBytes
	KindMaxLineLength
)

// CanonicalOrder 是列的固定输出顺序，与命令行参数顺序无关。
var CanonicalOrder = []Kind{KindLines, KindWords, KindChars, KindBytes, KindMaxLineLength}

// String 返回指标名称，主要用于日志和测试输出。
func (k Kind) String() string {
	switch k {
	case KindLines:
		return "lines"
	case KindWords:
		return "words"
	case KindChars:
		return "chars"
	case KindBytes:
		return "bytes"
	case KindMaxLineLength:
		return "max_line_length"
	default:
		return "unknown"
	}
}

// Selection 是命令层解析完成后的输出选择。
// 输出层只消费该值，不关心原始参数出现的次数与顺序。
type Selection struct {
	kinds Kind
	// Default 为 true 表示用户没有指定任何指标参数。
	Default bool
}

// DefaultSelection 返回默认选择：lines、words、bytes。
func DefaultSelection() Selection {
	return Selection{kinds: KindLines | KindWords | KindBytes, Default: true}
}

// NewSelection 由指定指标构造选择；为空时退化为默认选择。
func NewSelection(kinds ...Kind) Selection {
	var set Kind
	for _, kind := range kinds {
		set |= kind
	}
	if set == 0 {
		return DefaultSelection()
	}
	return Selection{kinds: set}
}

// Has 判断是否选中某个指标。
func (s Selection) Has(kind Kind) bool {
	return s.kinds&kind != 0
}

// Kinds 按固定顺序返回选中的指标。
func (s Selection) Kinds() []Kind {
	result := make([]Kind, 0, len(CanonicalOrder))
	for _, kind := range CanonicalOrder {
		if s.Has(kind) {
			result = append(result, kind)
		}
	}
	return result
}

// Len 返回选中的指标数量。
func (s Selection) Len() int {
	return len(s.Kinds())
}

func (s Selection) String() string {
	names := make([]string, 0, len(CanonicalOrder))
	for _, kind := range s.Kinds() {
		names = append(names, kind.String())
	}
	return strings.Join(names, ",")
}
