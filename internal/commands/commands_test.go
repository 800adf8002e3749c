package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcheeks/banking-api/internal/seed"
)

const fixtureStatement = "06/03/2024,BAC,330012,44-55-66,ACME PAYROLL,,2500.00,3100.00\n" +
	"08/03/2024,POS,330012,44-55-66,TESCO STORES 3297,54.20,,3045.80\n"

// setupEnv points the CLI at temp data, db and catalogue locations.
func setupEnv(t *testing.T) {
	t.Helper()

	dataRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataRoot, "current"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dataRoot, "current", "202403.csv"), []byte(fixtureStatement), 0o644))

	cataloguePath := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, seed.Save(cataloguePath, &seed.Catalogue{
		Statements: map[string][]string{"current": {"202403"}},
		Tags:       []string{"salary", "groceries"},
		Descriptions: []seed.DescriptionRule{
			{Desc: "ACME PAYROLL", Tags: []string{"salary"}},
		},
	}))

	t.Setenv("BANKING_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("BANKING_DATA_ROOT", dataRoot)
	t.Setenv("BANKING_DATABASE_PATH", filepath.Join(t.TempDir(), "banking.db"))
	t.Setenv("BANKING_SEED_CATALOGUE", cataloguePath)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "import")
	assert.Contains(t, names, "export")
}

func TestImportRequiresArgs(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"import", "current"})
	assert.Error(t, root.Execute())
}

func TestMigrateImportExportFlow(t *testing.T) {
	setupEnv(t)

	root := NewRootCommand()
	root.SetArgs([]string{"migrate", "--force"})
	require.NoError(t, root.Execute())

	root = NewRootCommand()
	root.SetArgs([]string{"import", "current", "202403"})
	require.NoError(t, root.Execute())

	root = NewRootCommand()
	root.SetArgs([]string{"export", "current", "202403"})
	require.NoError(t, root.Execute())
}

func TestExportUnknownPeriodFails(t *testing.T) {
	setupEnv(t)

	root := NewRootCommand()
	root.SetArgs([]string{"migrate", "--force"})
	require.NoError(t, root.Execute())

	root = NewRootCommand()
	root.SetArgs([]string{"export", "current", "209912"})
	assert.Error(t, root.Execute())
}
