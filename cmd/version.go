package cmd

import "github.com/spf13/cobra"

// configureVersion 启用 --version 参数。
// 命令示例：gowc --version
// 使用参数而不是子命令，避免与名为 version 的文件冲突。
func configureVersion(rootCmd *cobra.Command, version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("gowc version {{.Version}}\n")
}
