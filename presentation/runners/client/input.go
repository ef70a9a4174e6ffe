package client

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// scanLines calls onLine for every non-empty line of in, without the trailing "\n" or "\r\n".
// Lines longer than limit are discarded as they stream in and reported to onSkip with
// their length, and reading continues with the next line. It returns nil at EOF.
func scanLines(in io.Reader, limit int, onLine func(line []byte), onSkip func(length int)) error {
	reader := bufio.NewReader(in)
	var line []byte
	discarded := 0
	for {
		chunk, err := reader.ReadSlice('\n')
		switch {
		case discarded > 0:
			discarded += len(chunk)
		case len(line)+len(chunk) > limit+len("\r\n"):
			discarded = len(line) + len(chunk)
			line = line[:0]
		default:
			line = append(line, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		content := bytes.TrimSuffix(bytes.TrimSuffix(line, []byte("\n")), []byte("\r"))
		switch {
		case discarded > 0:
			onSkip(discarded)
		case len(content) > limit:
			onSkip(len(content))
		case len(content) > 0:
			onLine(append([]byte(nil), content...))
		}
		line = line[:0]
		discarded = 0

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
