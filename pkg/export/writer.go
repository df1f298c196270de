package export

import (
	"fmt"
	"io"
	"os"
)

// DocumentationURL is the pointer embedded in every script header.
const DocumentationURL = "https://scribehq.github.io/sqlscribe/commands/export"

// headerTimestampLayout is the generation-date format in script headers.
const headerTimestampLayout = "2006-01-02 15:04:05"

// HeaderBlock renders the comment block written once per output target,
// before any script bodies: acting user, invoking command, server name,
// generation timestamp and a documentation pointer.
func HeaderBlock(rc RunContext, serverName string) string {
	return fmt.Sprintf(`/*
	Created by %s using %s
	Server: %s
	Date: %s
	See %s for documentation
*/
`,
		rc.ActingUser, rc.CommandName, serverName,
		rc.Timestamp.Format(headerTimestampLayout), DocumentationURL)
}

// writeScripts appends the header (when withHeader is set) and the script
// body to the target file in the given encoding, returning the number of
// encoded bytes written. The file handle is acquired immediately before the
// write and released immediately after, on both normal completion and error.
func writeScripts(t *Target, enc Encoding, header, script string, withHeader bool) (written int64, err error) {
	f, err := os.OpenFile(t.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, NewWriteError(t.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewWriteError(t.Path, cerr)
		}
	}()

	counter := &countingWriter{w: f}
	ew, err := enc.WrapWriter(counter)
	if err != nil {
		return 0, NewWriteError(t.Path, err)
	}

	if withHeader {
		if _, err := io.WriteString(ew, header); err != nil {
			ew.Close()
			return counter.n, NewWriteError(t.Path, err)
		}
	}
	if _, err := io.WriteString(ew, script); err != nil {
		ew.Close()
		return counter.n, NewWriteError(t.Path, err)
	}

	if err := ew.Close(); err != nil {
		return counter.n, NewWriteError(t.Path, err)
	}
	return counter.n, nil
}

// countingWriter tracks bytes that reach the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
