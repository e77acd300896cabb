package biometrics

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// TerminalSensor stands in for a hardware sensor on a terminal: the prompt is
// shown on w and the user confirms it by answering "y" on reader.
type TerminalSensor struct {
	kind   models.BiometryKind
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminalSensor returns a sensor of the given kind. Kind none yields a
// sensor that is never available.
func NewTerminalSensor(kind models.BiometryKind, reader *bufio.Reader, w io.Writer) *TerminalSensor {
	return &TerminalSensor{kind: kind, reader: reader, w: w}
}

// New returns Unavailable for kind none and a TerminalSensor otherwise.
func New(kind models.BiometryKind, reader *bufio.Reader, w io.Writer) Capability {
	if kind == models.BiometryNone || kind == "" {
		return Unavailable{}
	}
	return NewTerminalSensor(kind, reader, w)
}

func (s *TerminalSensor) Probe(ctx context.Context) Status {
	if s.kind == models.BiometryNone || s.kind == "" {
		return Status{Kind: models.BiometryNone}
	}
	return Status{Available: true, Kind: s.kind}
}

func (s *TerminalSensor) Prompt(ctx context.Context, message string) bool {
	if !s.Probe(ctx).Available || ctx.Err() != nil {
		return false
	}

	if _, err := fmt.Fprintf(s.w, "[%s] %s (y/N): ", DisplayName(s.kind), message); err != nil {
		return false
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
