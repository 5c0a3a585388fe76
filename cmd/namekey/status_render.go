package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"namekey/internal/hanzi"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

// statusLine is one labelled row of `namekey status`.
type statusLine struct {
	label   string
	kind    statusKind
	message string
}

func infoLine(label, message string) statusLine {
	return statusLine{label: label, kind: statusInfo, message: message}
}

// engineLine reports the tokenizer's construction state. A degraded engine is
// a warning, not an error: latin-only lookups still work.
func engineLine(state hanzi.State) statusLine {
	if state == hanzi.StateReady {
		return statusLine{label: "Phonetic engine", kind: statusOK, message: "ready"}
	}
	return statusLine{label: "Phonetic engine", kind: statusWarn, message: "degraded; names produce no tokens"}
}

// storeLine reports a row count for one database, or the error opening it.
func storeLine(label string, count int, noun string, err error) statusLine {
	if err != nil {
		return statusLine{label: label, kind: statusError, message: err.Error()}
	}
	return statusLine{label: label, kind: statusOK, message: fmt.Sprintf("%d %s", count, noun)}
}

func renderStatusLines(lines []statusLine, colorize bool) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, renderStatusLine(line.label, line.kind, line.message, colorize))
	}
	return out
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
