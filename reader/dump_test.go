package reader

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/timegrid/model"
)

func TestParseFragmentDump(t *testing.T) {
	dump := `{"x":100,"y":700,"width":60,"text":"09:00-09:55"}

{"x":40,"y":400,"width":30,"text":"MON"}
{"x":110,"y":400,"width":40,"text":"  DBMS  "}
{"x":0,"y":0,"width":0,"text":"   "}
`

	fragments, err := ParseFragmentDump(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ParseFragmentDump: %v", err)
	}

	want := []model.TextFragment{
		{X: 100, Y: 700, Width: 60, Text: "09:00-09:55"},
		{X: 40, Y: 400, Width: 30, Text: "MON"},
		{X: 110, Y: 400, Width: 40, Text: "DBMS"},
	}
	if !reflect.DeepEqual(fragments, want) {
		t.Errorf("fragments mismatch:\ngot  %+v\nwant %+v", fragments, want)
	}
}

func TestParseFragmentDumpBadLine(t *testing.T) {
	dump := `{"x":100,"y":700,"width":60,"text":"ok"}
not json at all`

	_, err := ParseFragmentDump(strings.NewReader(dump))
	if !errors.Is(err, ErrUnparseable) {
		t.Fatalf("err = %v, want ErrUnparseable", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err %q should name the offending line", err)
	}
}

func TestFragmentDumpRoundTrip(t *testing.T) {
	fragments := []model.TextFragment{
		{X: 300, Y: 750, Width: 90, Text: "IV SEMESTER"},
		{X: 395, Y: 750, Width: 90, Text: "[SECTION-A1]"},
		{X: 110, Y: 400, Width: 40, Text: "DBMS"},
	}

	var buf bytes.Buffer
	if err := WriteFragmentDump(&buf, fragments); err != nil {
		t.Fatalf("WriteFragmentDump: %v", err)
	}

	got, err := ParseFragmentDump(&buf)
	if err != nil {
		t.Fatalf("ParseFragmentDump: %v", err)
	}
	if !reflect.DeepEqual(got, fragments) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, fragments)
	}
}
