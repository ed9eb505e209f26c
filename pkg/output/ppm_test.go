package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestEncodePPM(t *testing.T) {
	frame := core.NewFrame(2, 2)
	frame.Set(0, 0, core.NewVec3(1, 1, 1))
	frame.Set(1, 0, core.NewVec3(0, 0, 0))
	frame.Set(0, 1, core.NewVec3(0.25, 1, 0))
	frame.Set(1, 1, core.NewVec3(1.5, -1, 0.25))

	var buf bytes.Buffer
	if err := EncodePPM(&buf, frame); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 255 255\n" +
		"0 0 0\n" +
		"128 255 0\n" +
		"255 0 128\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestEncodePPM_LineCount(t *testing.T) {
	frame := core.NewFrame(400, 225)

	var buf bytes.Buffer
	if err := EncodePPM(&buf, frame); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "P3\n400 225\n255\n") {
		t.Errorf("Unexpected header %q", buf.String()[:20])
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3+400*225 {
		t.Errorf("Expected %d lines, got %d", 3+400*225, len(lines))
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodePPM_PropagatesWriteErrors(t *testing.T) {
	frame := core.NewFrame(1, 1)
	if err := EncodePPM(failingWriter{}, frame); err == nil {
		t.Error("Expected an error from a failing writer")
	}
}
