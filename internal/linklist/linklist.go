// Package linklist turns a sync log into a list of link paths.
//
// Only lines introduced by a '>' are of interest.  Within such a line, the
// text up to the first space is dropped, every space becomes a path
// separator '/', and everything else after the first space is copied.  All
// other input is skipped.
package linklist

import (
	"bufio"
	"errors"
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linklist'
func tracer() tracing.Trace {
	return tracing.Select("linklist")
}

// Stats reports what a Rewrite did.
type Stats struct {
	// Lines counts the '>' lines found.
	Lines int

	// Truncated is true if the input ended inside a '>' line.
	Truncated bool
}

// Rewrite copies the link list for the sync log in r to w.
func Rewrite(r io.Reader, w io.Writer) (Stats, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var stats Stats
	inLine := false
	copying := false
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			stats.Truncated = inLine
			break
		}
		if err != nil {
			return stats, err
		}

		if !inLine {
			if c == '>' {
				inLine = true
				copying = false
				stats.Lines++
			}
			continue
		}

		switch {
		case c == ' ':
			copying = true
			err = bw.WriteByte('/')
		case c == '\n':
			inLine = false
			err = bw.WriteByte(c)
		case copying:
			err = bw.WriteByte(c)
		}
		if err != nil {
			return stats, err
		}
	}

	if stats.Truncated {
		tracer().Infof("linklist: input ended inside a '>' line")
	}
	tracer().Debugf("linklist: rewrote %d lines", stats.Lines)
	return stats, bw.Flush()
}
