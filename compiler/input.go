package compiler

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/edwingeng/deque"
)

// LineReader supplies one line of text per provide statement. ReadLine
// returns the line without its terminator, or io.EOF once nothing is left.
type LineReader interface {
	ReadLine() (string, error)
}

type readerInput struct {
	r *bufio.Reader
}

// NewLineReader reads lines from r, typically os.Stdin.
func NewLineReader(r io.Reader) LineReader {
	return &readerInput{r: bufio.NewReader(r)}
}

func (in *readerInput) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// QueuedInput hands out pre-supplied lines first and then falls back to
// another reader. A nil fallback means EOF after the queue drains.
type QueuedInput struct {
	queue    deque.Deque
	fallback LineReader
}

func NewQueuedInput(lines []string, fallback LineReader) *QueuedInput {
	q := &QueuedInput{
		queue:    deque.NewDeque(),
		fallback: fallback,
	}
	for _, line := range lines {
		q.Push(line)
	}
	return q
}

// Push appends a line to the queue.
func (q *QueuedInput) Push(line string) {
	q.queue.PushBack(line)
}

// Pending is the number of queued lines not yet read.
func (q *QueuedInput) Pending() int {
	return q.queue.Len()
}

func (q *QueuedInput) ReadLine() (string, error) {
	if !q.queue.Empty() {
		return q.queue.PopFront().(string), nil
	}
	if q.fallback == nil {
		return "", io.EOF
	}
	return q.fallback.ReadLine()
}
