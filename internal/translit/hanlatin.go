package translit

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// hanLatin renders Han ideographs as toned pinyin. Consecutive readings are
// separated by a space; characters without a reading pass through.
type hanLatin struct {
	args  pinyin.Args
	extra map[rune]string
}

func newHanLatinStep(o *options) (Transliterator, error) {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	args.Heteronym = false

	step := &hanLatin{args: args}
	if o.dictionaryPath != "" {
		extra, err := loadDictionary(o.dictionaryPath)
		if err != nil {
			return nil, err
		}
		step.extra = extra
	}
	return step, nil
}

func (h *hanLatin) Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	prevReading := false
	for _, r := range text {
		reading := h.reading(r)
		if reading == "" {
			b.WriteRune(r)
			prevReading = false
			continue
		}
		if prevReading {
			b.WriteByte(' ')
		}
		b.WriteString(reading)
		prevReading = true
	}
	return b.String()
}

func (h *hanLatin) reading(r rune) string {
	if reading, ok := h.extra[r]; ok {
		return reading
	}
	if readings := pinyin.SinglePinyin(r, h.args); len(readings) > 0 {
		return readings[0]
	}
	return ""
}

// loadDictionary parses "U+4E2D: zhōng,zhòng  # 中" lines. Only the first
// reading of each entry is kept.
func loadDictionary(path string) (map[rune]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionary, err)
	}
	defer file.Close()

	entries := make(map[rune]string)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		code, readings, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: missing ':'", ErrDictionary, path, lineNo)
		}
		code = strings.TrimSpace(code)
		if !strings.HasPrefix(strings.ToUpper(code), "U+") {
			return nil, fmt.Errorf("%w: %s:%d: code point %q lacks U+ prefix", ErrDictionary, path, lineNo, code)
		}
		value, err := strconv.ParseUint(code[2:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: parse code point: %w", ErrDictionary, path, lineNo, err)
		}
		first, _, _ := strings.Cut(readings, ",")
		first = strings.TrimSpace(first)
		if first == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty reading", ErrDictionary, path, lineNo)
		}
		entries[rune(value)] = first
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDictionary, path, err)
	}
	return entries, nil
}
