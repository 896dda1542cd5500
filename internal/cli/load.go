package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matkit/matkit/mat2"
)

// LoadMatrix reads a float64 matrix from the YAML file at path, or from
// stdin when path is "-". Shape problems surface as the mat2 sentinel
// errors so callers can match them with errors.Is.
func LoadMatrix(path string, stdin io.Reader) (*mat2.Matrix[float64], error) {
	var src io.Reader
	if path == "-" {
		src = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cli: %w", err)
		}
		defer f.Close()
		src = f
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}

	var rows [][]float64
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("cli: parse %s: %w", path, err)
	}

	m, err := mat2.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("cli: %s: %w", path, err)
	}
	log.Debug("matrix loaded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}
