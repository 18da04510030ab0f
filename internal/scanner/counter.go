package scanner

import (
	"errors"
	"io"
	"unicode"
	"unicode/utf8"

	"gowc/internal/model"
)

const (
	// bufferSize 是单次 Read 的块大小。
	bufferSize = 64 * 1024
	// tabStop 是计算最长行时的制表位间隔。
	tabStop = 8
)

// counter 维护单次扫描的全部状态，每个文件独立一份。
type counter struct {
	metrics model.Metrics
	inWord  bool
	column  int64
}

// consume 对一个已解码字符做分类，单次前向处理。
func (c *counter) consume(r rune, size int) {
	c.metrics.Chars++
	c.metrics.Bytes += int64(size)

	switch {
	case r == '\n':
		c.metrics.Lines++
		c.endLine()
		return
	case r == '\t':
		c.column += tabStop - c.column%tabStop
	default:
		c.column++
	}

	if unicode.IsSpace(r) {
		c.endWord()
		return
	}
	c.inWord = true
}

func (c *counter) endWord() {
	if c.inWord {
		c.metrics.Words++
		c.inWord = false
	}
}

func (c *counter) endLine() {
	c.endWord()
	if c.column > c.metrics.MaxLineLength {
		c.metrics.MaxLineLength = c.column
	}
	c.column = 0
}

// Count 以固定大小的缓冲区流式读取 reader 并统计。
//
// 块边界可能切断多字节字符：未能完整解码的尾部字节会被搬到缓冲区开头，
// 与下一次读取的数据拼接后再解码。非法 UTF-8 返回 *EncodingError。
func Count(reader io.Reader) (model.Metrics, error) {
	var (
		c       counter
		offset  int64
		pending int
	)

	// 额外的 UTFMax 字节用来容纳上一块遗留的半个字符。
	buf := make([]byte, bufferSize+utf8.UTFMax)
	for {
		n, err := reader.Read(buf[pending : pending+bufferSize])
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			return c.metrics, err
		}

		data := buf[:pending+n]
		i := 0
		for i < len(data) {
			if !atEOF && !utf8.FullRune(data[i:]) {
				break
			}
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				return c.metrics, &EncodingError{Offset: offset}
			}
			c.consume(r, size)
			i += size
			offset += int64(size)
		}
		pending = copy(buf, data[i:])

		if atEOF {
			break
		}
	}

	// 文件末尾没有换行符时，最后一行和最后一个单词在这里结算。
	c.endLine()
	return c.metrics, nil
}
