// Package scanner 提供文件统计能力。
// 该层负责打开文件、流式读取和逐字符分类，不负责输出格式。
package scanner

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"gowc/internal/model"
)

// Service 是扫描服务对象。
type Service struct {
	logger *log.Logger
}

// NewService 创建扫描服务。logger 为 nil 时不输出诊断信息。
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{logger: logger}
}

// ScanFiles 按给定顺序逐个扫描文件。
// 任意一个文件失败都会立即返回错误，后续文件不再处理。
func (s *Service) ScanFiles(paths []string) ([]model.Metrics, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}

	rows := make([]model.Metrics, 0, len(paths))
	for _, path := range paths {
		metrics, err := ScanFile(path)
		if err != nil {
			s.logger.Printf("%s: scan failed: %v", path, err)
			return nil, err
		}

		s.logger.Printf("%s: %s, %d lines", path, humanize.Bytes(uint64(metrics.Bytes)), metrics.Lines)
		rows = append(rows, metrics)
	}
	return rows, nil
}

// ScanFile 统计单个文件。文件句柄在返回前一定会被关闭。
func ScanFile(path string) (model.Metrics, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Metrics{}, &IOError{Path: path, Err: err}
	}

	metrics, countErr := Count(file)
	closeErr := file.Close()

	if countErr != nil {
		var encodingErr *EncodingError
		if errors.As(countErr, &encodingErr) {
			encodingErr.Path = path
			return model.Metrics{}, encodingErr
		}
		return model.Metrics{}, &IOError{Path: path, Err: countErr}
	}

	if closeErr != nil {
		return model.Metrics{}, &IOError{Path: path, Err: fmt.Errorf("close: %w", closeErr)}
	}

	metrics.Path = path
	return metrics, nil
}
