// Package snapshot stores automaton definitions as compact binary blobs.
//
// A snapshot is a one byte format version followed by the msgpack encoding of
// a definition.Definition. Guards are stored as references and must be
// resolved again when the automaton is rebuilt.
package snapshot

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ugorji/go/codec"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/definition"
)

// Version is the snapshot format version written by this package.
const Version byte = 1

var (
	// ErrUnsupportedVersion is returned for blobs written in an unknown format.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrEmptySnapshot is returned for empty input.
	ErrEmptySnapshot = errors.New("empty snapshot")
)

func newHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.Canonical = true
	return h
}

// Encode returns the snapshot of d.
func Encode(d *definition.Definition) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (*definition.Definition, error) {
	return Read(bytes.NewReader(data))
}

// Write writes the snapshot of d to w.
func Write(w io.Writer, d *definition.Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, err := w.Write([]byte{Version}); err != nil {
		return err
	}
	if err := codec.NewEncoder(w, newHandle()).Encode(d); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Read reads a snapshot from r.
func Read(r io.Reader) (*definition.Definition, error) {
	br := bufio.NewReader(r)
	version, err := br.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySnapshot
		}
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var d definition.Definition
	if err := codec.NewDecoder(br, newHandle()).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Take captures the definition of m and encodes it.
func Take[A any](m *automata.FiniteStateMachine[A]) ([]byte, error) {
	return Encode(definition.Capture(m.Info()))
}

// Restore decodes data and rebuilds the automaton, resolving guards with resolver.
func Restore[A any](data []byte, resolver automata.GuardResolver[A], opts ...automata.Option[A]) (*automata.FiniteStateMachine[A], error) {
	d, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return definition.Build(d, resolver, opts...)
}
