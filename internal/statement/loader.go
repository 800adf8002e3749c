package statement

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flashcheeks/banking-api/internal/model"
)

// Path returns the statement file location for an account/period pair:
// <dataRoot>/<account>/<period>.csv.
func Path(dataRoot, account, period string) string {
	return filepath.Join(dataRoot, account, period+".csv")
}

// Load reads and parses the statement file for account/period. A
// missing file is a NotFoundError, not an I/O failure.
func Load(dataRoot, account, period string) ([]model.Transaction, error) {
	path := Path(dataRoot, account, period)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &model.NotFoundError{Resource: "statement " + path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement %s: %w", path, err)
	}
	return Parse(account, string(data))
}
