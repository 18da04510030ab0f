// Package report 提供 gowc 的输出能力。
// 当前实现支持与 wc 对齐的 table 格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gowc/internal/model"
)

// Report 是一次调用的完整输出模型：文件明细按输入顺序排列，
// 只有多于一个文件时才有汇总行。
type Report struct {
	Files []model.Metrics `json:"files"`
	Total *model.Metrics  `json:"total"`
}

// New 根据扫描结果构建输出模型。
func New(rows []model.Metrics) Report {
	result := Report{Files: rows}
	if len(rows) > 1 {
		total := model.Total(rows)
		result.Total = &total
	}
	return result
}

// Rows 返回需要渲染的全部行，汇总行（如果有）在最后。
func (r Report) Rows() []model.Metrics {
	rows := make([]model.Metrics, 0, len(r.Files)+1)
	rows = append(rows, r.Files...)
	if r.Total != nil {
		rows = append(rows, *r.Total)
	}
	return rows
}

// PrintTable 按列对齐输出每一行：数字右对齐，随后一个空格和文件名。
func PrintTable(writer io.Writer, result Report, selection model.Selection) error {
	kinds := selection.Kinds()
	rows := result.Rows()
	widths := ComputeWidths(rows, selection)

	var line strings.Builder
	for _, row := range rows {
		line.Reset()
		for _, kind := range kinds {
			fmt.Fprintf(&line, "%*d", widths[kind], row.Value(kind))
		}
		line.WriteByte(' ')
		line.WriteString(row.Path)
		line.WriteByte('\n')

		if _, err := io.WriteString(writer, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON 把统计结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result Report) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result Report) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, append(content, '\n'), 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
