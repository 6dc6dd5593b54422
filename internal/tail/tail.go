package tail

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadTail returns the last maxLines lines of the file at path, or the whole
// file when it holds fewer. Lines keep their newline terminators exactly as
// read; a final unterminated line counts as a line. The read holds at most
// maxLines lines in memory at any point, so file size beyond the tail window
// does not affect memory use.
//
// A missing file yields an error wrapping fs.ErrNotExist so callers can
// distinguish rotation races (expected, 404) from genuine I/O failures
// (500). maxLines <= 0 returns empty content.
func ReadTail(path string, maxLines int) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		return "", nil
	}

	reader := bufio.NewReader(file)
	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			ring[idx] = line
			idx = (idx + 1) % maxLines
			if count < maxLines {
				count++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read log file: %w", err)
		}
	}

	var out strings.Builder
	if count == maxLines {
		for i := 0; i < count; i++ {
			out.WriteString(ring[(idx+i)%maxLines])
		}
	} else {
		for i := 0; i < count; i++ {
			out.WriteString(ring[i])
		}
	}
	return out.String(), nil
}
