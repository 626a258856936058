package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/model"
)

// A dump of the "expenses" key as the browser app stored it.
const browserDump = `[
  {"id":"1752570000000","title":"Dinner","amount":300,"category":"Food","date":"2025-07-15",
   "friends":[{"name":"A","share":100,"paid":true},{"name":"B","share":100,"paid":false},{"name":"C","share":100,"paid":false}]},
  {"id":"1752570000001","title":"Snacks","amount":100,"category":"Food","date":"2025-07-15",
   "friends":[{"name":"X","share":33.33,"paid":false},{"name":"Y","share":33.33,"paid":false},{"name":"Z","share":33.33,"paid":false}]}
]`

func TestReadArray(t *testing.T) {
	res, err := Read(strings.NewReader(browserDump))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res.Skipped != 0 {
		t.Fatalf("Skipped = %d, problems %v", res.Skipped, res.Problems)
	}
	if len(res.Expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(res.Expenses))
	}
	if !res.Expenses[0].Friends[0].Paid || res.Expenses[1].Friends[2].Share != 33.33 {
		t.Fatalf("fields not decoded: %+v", res.Expenses)
	}
}

func TestReadLinesSkipsBadRecords(t *testing.T) {
	input := strings.Join([]string{
		`{"id":"a","title":"Cab","amount":40,"category":"Travel","date":"2025-07-16","friends":[{"name":"A","share":20,"paid":false},{"name":"B","share":20,"paid":false}]}`,
		``,
		`{not json`,
		`{"id":"b","title":"","amount":10,"category":"Food","date":"2025-07-16","friends":[{"name":"A","share":10,"paid":false}]}`,
		`{"id":"c","title":"Tea","amount":10,"category":"Food","date":"2025-07-16","friends":[{"name":"A","share":10,"paid":true}]}`,
	}, "\n")

	res, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.Expenses) != 2 || res.Expenses[0].ID != "a" || res.Expenses[1].ID != "c" {
		t.Fatalf("Expenses = %+v", res.Expenses)
	}
	if res.Skipped != 2 || len(res.Problems) != 2 {
		t.Fatalf("Skipped = %d, Problems = %v", res.Skipped, res.Problems)
	}
	if !strings.HasPrefix(res.Problems[0].Error(), "line 3:") {
		t.Errorf("first problem = %q, want line 3", res.Problems[0])
	}
	if !errors.Is(res.Problems[1], expense.ErrValidation) {
		t.Errorf("second problem = %v, want validation error", res.Problems[1])
	}
}

func TestReadEmptyInput(t *testing.T) {
	res, err := Read(strings.NewReader("  \n "))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res.Expenses == nil || len(res.Expenses) != 0 {
		t.Fatalf("Expenses = %#v, want empty", res.Expenses)
	}
}

func TestReadMalformedArray(t *testing.T) {
	if _, err := Read(strings.NewReader(`[{"id":"a"`)); err == nil {
		t.Fatal("Read accepted a truncated array")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	in, err := Read(strings.NewReader(browserDump))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, in.Expenses); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(out.Expenses) != len(in.Expenses) || out.Expenses[1].Title != "Snacks" {
		t.Fatalf("round trip = %+v", out.Expenses)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestWriteNilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []model.Expense(nil)); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("Write(nil) = %q", buf.String())
	}
}
