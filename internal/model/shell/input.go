package shell

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineLength = 4096

var errLineTooLong = errors.New("input line too long")

type inputLine struct {
	text    string
	tooLong bool
}

// lineReader reads input on its own goroutine so reads can be abandoned when
// the context is cancelled.
type lineReader struct {
	lines chan inputLine
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan inputLine),
		done:  make(chan struct{}),
	}
	go lr.scan(r)
	return lr
}

func (lr *lineReader) scan(r io.Reader) {
	defer close(lr.lines)

	br := bufio.NewReader(r)
	for {
		line, err := readLine(br, maxLineLength)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.err = err
			}
			return
		}
		select {
		case lr.lines <- line:
		case <-lr.done:
			return
		}
	}
}

// readLine reads up to the next line end. Lines longer than limit are drained
// and reported as tooLong without their text.
func readLine(br *bufio.Reader, limit int) (inputLine, error) {
	var (
		buf  []byte
		line inputLine
	)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return inputLine{}, err
		}
		if !line.tooLong {
			if len(buf)+len(chunk) > limit {
				line.tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if !line.tooLong {
		line.text = string(buf)
	}
	return line, nil
}

// ReadLine returns io.EOF once the input is exhausted and errLineTooLong for
// a line over maxLineLength bytes.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", errors.Wrap(lr.err, "read input")
			}
			return "", io.EOF
		}
		if line.tooLong {
			return "", errLineTooLong
		}
		return line.text, nil
	}
}

// ReadToken skips blank lines and returns the first word of the next line.
func (lr *lineReader) ReadToken(ctx context.Context) (string, error) {
	for {
		line, err := lr.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

func (lr *lineReader) Close() {
	close(lr.done)
}
