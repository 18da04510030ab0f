package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gowc/internal/report"
	"gowc/internal/scanner"

	"github.com/spf13/cobra"
)

// countOptions 存放统计命令的可配置参数。
type countOptions struct {
	selection selectionFlags
	format    string
	output    string
	verbose   bool
}

func newCountOptions() *countOptions {
	return &countOptions{format: "table"}
}

// registerFlags 注册统计命令的全部参数。
func (o *countOptions) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	o.selection.register(flags)
	flags.StringVar(&o.format, "format", o.format, "输出格式: table 或 json")
	flags.StringVar(&o.output, "output", o.output, "json 导出文件路径，为空时不导出")
	flags.BoolVarP(&o.verbose, "verbose", "v", o.verbose, "在 stderr 输出每个文件的扫描信息")
}

// run 扫描全部文件后再统一输出。
// 任意文件失败都直接返回错误，此时 stdout 不会有任何输出。
func (o *countOptions) run(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(strings.TrimSpace(o.format))
	if format != "table" && format != "json" {
		return errors.New("unsupported format, allowed values: table, json")
	}

	logWriter := io.Discard
	if o.verbose {
		logWriter = cmd.ErrOrStderr()
	}
	logger := log.New(logWriter, "gowc: ", 0)

	selection := o.selection.resolve()
	logger.Printf("columns: %s", selection)

	rows, err := scanner.NewService(logger).ScanFiles(args)
	if err != nil {
		return err
	}
	result := report.New(rows)

	switch format {
	case "table":
		return report.PrintTable(cmd.OutOrStdout(), result, selection)
	case "json":
		if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}

		outputPath := strings.TrimSpace(o.output)
		if outputPath == "" {
			return nil
		}
		if err := report.WriteJSONFile(outputPath, result); err != nil {
			return err
		}
		logger.Printf("JSON exported to %s", outputPath)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
