// Package source reads and writes expense collections as files, in the same
// JSON layout the store keeps under its blob key. A file may hold a JSON
// array or one expense object per line.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/model"
)

// ReadResult holds the records read from a file.
type ReadResult struct {
	Expenses []model.Expense
	Skipped  int     // records that failed to decode or validate
	Problems []error // one entry per skipped record
}

// ReadFile reads an expense file from disk.
func ReadFile(path string) (ReadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ReadResult{}, err
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Read decodes a JSON array or JSON-lines stream of expenses. Records that
// do not decode or fail expense.Check are counted and skipped; only a read
// error or an unparseable array fails the whole call.
func Read(r io.Reader) (ReadResult, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return ReadResult{Expenses: []model.Expense{}}, nil
	}
	if err != nil {
		return ReadResult{}, err
	}

	if first == '[' {
		return readArray(br)
	}
	return readLines(br)
}

func readArray(r io.Reader) (ReadResult, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return ReadResult{}, fmt.Errorf("decoding expense array: %w", err)
	}

	res := ReadResult{Expenses: make([]model.Expense, 0, len(raw))}
	for i, msg := range raw {
		res.add(fmt.Sprintf("record %d", i+1), msg)
	}
	return res, nil
}

func readLines(r io.Reader) (ReadResult, error) {
	res := ReadResult{Expenses: []model.Expense{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		res.add(fmt.Sprintf("line %d", lineNo), line)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}
	return res, nil
}

func (res *ReadResult) add(where string, data []byte) {
	var e model.Expense
	if err := json.Unmarshal(data, &e); err != nil {
		res.skip(fmt.Errorf("%s: %w", where, err))
		return
	}
	if err := expense.Check(e); err != nil {
		res.skip(fmt.Errorf("%s: %w", where, err))
		return
	}
	res.Expenses = append(res.Expenses, e)
}

func (res *ReadResult) skip(err error) {
	res.Skipped++
	res.Problems = append(res.Problems, err)
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
