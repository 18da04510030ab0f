package scanner

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// prepareBenchmarkFile 创建一个用于单文件扫描基准测试的文本文件。
func prepareBenchmarkFile(b *testing.B, line string) string {
	b.Helper()

	filePath := filepath.Join(b.TempDir(), "large.txt")

	lines := make([]string, 0, 20000)
	for i := 0; i < 20000; i++ {
		lines = append(lines, line+strconv.Itoa(i))
	}

	if err := os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		b.Fatalf("write benchmark fixture failed: %v", err)
	}
	return filePath
}

// BenchmarkScanASCII 衡量纯 ASCII 文件的扫描性能。
func BenchmarkScanASCII(b *testing.B) {
	filePath := prepareBenchmarkFile(b, "the quick brown fox\tjumps over the lazy dog ")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ScanFile(filePath); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}

// BenchmarkScanMultiByte 衡量多字节字符文件的扫描性能。
func BenchmarkScanMultiByte(b *testing.B) {
	filePath := prepareBenchmarkFile(b, "敏捷的棕色狐狸 跳过了 懒狗 ")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ScanFile(filePath); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
