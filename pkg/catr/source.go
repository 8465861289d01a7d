package catr

import (
	"io"
	"os"
)

// SourceKind tags the variant held by a Source.
type SourceKind int

const (
	SourceStdin SourceKind = iota
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceStdin:
		return "stdin"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// Source is one input: either standard input or a file path.
type Source struct {
	Kind SourceKind
	Path string // set for SourceFile
}

// NewSource selects the variant for an input name.
func NewSource(name string) Source {
	if name == StdinName {
		return Source{Kind: SourceStdin}
	}
	return Source{Kind: SourceFile, Path: name}
}

// Name returns the input name the source was selected from.
func (s Source) Name() string {
	if s.Kind == SourceStdin {
		return StdinName
	}
	return s.Path
}

// Open returns a reader owned by the caller until Close. Closing a stdin
// source leaves stdin open so it can be named more than once.
func (s Source) Open(stdin io.Reader) (io.ReadCloser, error) {
	if s.Kind == SourceStdin {
		return io.NopCloser(stdin), nil
	}
	return os.Open(s.Path)
}
