package interp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brewinlang/brewin/internal/host"
	"github.com/brewinlang/brewin/internal/lexer"
	"github.com/brewinlang/brewin/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every .bwn program under testdata/fixtures and
// snapshot-tests its stdout with go-snaps. A fixture may have a companion
// "<name>.bwn.input" file supplying its stdin.
func TestFixtures(t *testing.T) {
	dir := "../../testdata/fixtures"
	bwnFiles, err := filepath.Glob(filepath.Join(dir, "*.bwn"))
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(bwnFiles) == 0 {
		t.Skip("no fixtures found")
	}

	for _, path := range bwnFiles {
		name := strings.TrimSuffix(filepath.Base(path), ".bwn")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}

			var input string
			if data, err := os.ReadFile(path + ".input"); err == nil {
				input = string(data)
			}

			l := lexer.New(string(source))
			p := parser.New(l)
			program := p.ParseProgram()
			if len(p.Errors()) > 0 {
				t.Fatalf("parse errors in %s: %v", path, p.Errors())
			}

			h := host.NewBufferHost(input)
			in, err := New(program.Classes, string(source), path, h)
			if err != nil {
				t.Fatalf("failed to build interpreter for %s: %v", path, err)
			}
			if err := in.Run(); err != nil {
				t.Fatalf("runtime error in %s: %v", path, err)
			}

			snaps.MatchSnapshot(t, h.String())
		})
	}
}
