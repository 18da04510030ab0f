package cmd

import (
	"strconv"

	"github.com/spf13/pflag"

	"gowc/internal/model"
)

// orderedBool 是会记录出现顺序的布尔参数。
// 多个 orderedBool 共享同一个 clock，order 越大表示越晚出现。
type orderedBool struct {
	value bool
	order int
	clock *int
}

func (b *orderedBool) Set(raw string) error {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*b.clock++
	b.value = value
	b.order = *b.clock
	return nil
}

func (b *orderedBool) String() string {
	return strconv.FormatBool(b.value)
}

func (b *orderedBool) Type() string {
	return "bool"
}

// selectionFlags 收集指标相关参数，解析完成后转换为 model.Selection。
type selectionFlags struct {
	clock         int
	bytes         orderedBool
	chars         orderedBool
	words         orderedBool
	lines         orderedBool
	maxLineLength orderedBool
}

// register 把指标参数注册到 flag 集合，短参数可以合并使用（如 -cml）。
func (f *selectionFlags) register(flags *pflag.FlagSet) {
	f.bind(flags, &f.bytes, "bytes", "c", "print the byte counts")
	f.bind(flags, &f.chars, "chars", "m", "print the character counts")
	f.bind(flags, &f.words, "words", "w", "print the word counts")
	f.bind(flags, &f.lines, "lines", "l", "print the newline counts")
	f.bind(flags, &f.maxLineLength, "max-line-length", "L", "print the maximum line length, tabs stop every 8 columns")
}

func (f *selectionFlags) bind(flags *pflag.FlagSet, target *orderedBool, name string, shorthand string, usage string) {
	target.clock = &f.clock
	flags.VarPF(target, name, shorthand, usage).NoOptDefVal = "true"
}

// resolve 生成最终选择。
// -c 与 -m 互斥：两者都给出时以后出现的为准。
func (f *selectionFlags) resolve() model.Selection {
	var kinds []model.Kind

	if f.lines.value {
		kinds = append(kinds, model.KindLines)
	}
	if f.words.value {
		kinds = append(kinds, model.KindWords)
	}

	switch {
	case f.chars.value && f.bytes.value:
		if f.chars.order > f.bytes.order {
			kinds = append(kinds, model.KindChars)
		} else {
			kinds = append(kinds, model.KindBytes)
		}
	case f.chars.value:
		kinds = append(kinds, model.KindChars)
	case f.bytes.value:
		kinds = append(kinds, model.KindBytes)
	}

	if f.maxLineLength.value {
		kinds = append(kinds, model.KindMaxLineLength)
	}

	return model.NewSelection(kinds...)
}
