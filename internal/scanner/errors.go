package scanner

import "fmt"

// IOError 表示文件无法打开或读取（不存在、无权限、读失败等）。
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError 表示文件内容在 Offset 处不是合法的 UTF-8。
// Offset 是从文件开头计算的字节偏移。
type EncodingError struct {
	Path   string
	Offset int64
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
	}
	return fmt.Sprintf("%s: invalid UTF-8 at byte offset %d", e.Path, e.Offset)
}
