package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSimpleProgressBasic(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(100)
	time.Sleep(10 * time.Millisecond)
	progress.Update(50)
	time.Sleep(10 * time.Millisecond)
	progress.Finish()

	output := buf.String()
	if !strings.Contains(output, "Exporting:") {
		t.Error("expected progress output to contain 'Exporting:'")
	}
	if !strings.Contains(output, "obj/s") {
		t.Error("expected progress output to show object rate")
	}
}

func TestSimpleProgressZeroTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf).(*SimpleProgress)

	// Zero total must not panic or divide by zero.
	progress.Start(0)
	progress.Update(0)
	progress.Finish()
}

func TestSimpleProgressError(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(100)
	progress.Error(errors.New("disk full"))

	output := buf.String()
	if !strings.Contains(output, "Error:") || !strings.Contains(output, "disk full") {
		t.Errorf("error output missing message: %q", output)
	}
}

func TestSimpleProgressConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(1000)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(start int) {
			for j := 0; j < 100; j++ {
				progress.Update(int64(start*100 + j))
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	progress.Finish()

	if buf.Len() == 0 {
		t.Error("expected some progress output")
	}
}

func TestNewProgressReporterNilWriter(t *testing.T) {
	progress := NewProgressReporter(nil)
	if progress == nil {
		t.Fatal("NewProgressReporter(nil) should not return nil")
	}
	// Must not panic when writing to the default stream.
	progress.Start(10)
	progress.Update(5)
	progress.Finish()
}
