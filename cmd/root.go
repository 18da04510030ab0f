// Package cmd 提供 gowc 的命令行入口。
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// newRootCmd 创建根命令。根命令本身就是统计命令。
func newRootCmd(version string) *cobra.Command {
	options := newCountOptions()

	rootCmd := &cobra.Command{
		Use:   "gowc [flags] FILE...",
		Short: "统计文件的行数、单词数、字符数、字节数和最长行长度",
		Long: "gowc 对每个 FILE 输出一行统计值，多于一个文件时追加 total 汇总行。\n" +
			"输出顺序固定为 lines, words, chars, bytes, max-line-length；\n" +
			"不指定任何指标时默认输出 lines, words, bytes。",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          options.run,
	}

	options.registerFlags(rootCmd)
	configureVersion(rootCmd, version)

	return rootCmd
}
