package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paulo20Lima/esportes/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	root := cli.NewRootCmd("1.2.3")
	require.NotNil(t, root)

	assert.Contains(t, root.Use, "esportes")
	assert.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "browse")
	assert.Contains(t, names, "list")
}

func TestRootCmd_Help(t *testing.T) {
	root := cli.NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "browse")
	assert.Contains(t, out.String(), "list")
}

func TestRootCmd_BadConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	dataDir, catalogPath := writeCatalog(t, testCatalogJSON)

	badConfig := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("data_dir: [unclosed"), 0600))

	root := cli.NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"list", "--plain",
		"--data-dir", dataDir,
		"--catalog", catalogPath,
		"--config", badConfig,
	})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
