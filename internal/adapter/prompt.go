package adapter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// KeepPrompter asks the operator which copy of a duplicate group to keep.
// The call is synchronous; the whole pipeline blocks on the answer.
type KeepPrompter interface {
	// SelectKeep returns a 1-based index into candidates naming the file to
	// keep. Zero or any out-of-range value means "leave this group alone";
	// that is a valid answer, not an error.
	SelectKeep(fingerprint m.Fingerprint, candidates []m.Path) int
}

// ConsolePrompter implements KeepPrompter over an input/output stream pair,
// normally the command's stdin and stdout.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter wires a ConsolePrompter to the given streams.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// SelectKeep lists the candidates and reads one integer line. Empty or
// non-numeric input counts as abstaining.
func (p *ConsolePrompter) SelectKeep(fingerprint m.Fingerprint, candidates []m.Path) int {
	fmt.Fprintf(p.out, "\nFound duplicates with hash %s in selected directories:\n", fingerprint)

	for i, candidate := range candidates {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, candidate)
	}

	fmt.Fprint(p.out, "Please select the file number to KEEP (others will be deleted), or 0 to skip deletion: ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}

	return choice
}
