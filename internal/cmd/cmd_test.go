package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/gearshop/internal/catalog"
)

func TestPrintCatalogs(t *testing.T) {
	var buf bytes.Buffer
	printCatalogs(&buf, catalog.All())

	out := buf.String()
	assert.Contains(t, out, "Gaming Gear (/products)")
	assert.Contains(t, out, "PC Parts (/pcparts)")
	assert.Contains(t, out, "HyperX Cloud Stinger 2")
	assert.Contains(t, out, "$679")
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "migrate", "stats", "catalog"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	flag := migrateCmd.Flags().Lookup("drop-first")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestCatalogCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"catalog"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 2, strings.Count(buf.String(), "🏷️"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "", plural(1))
	assert.Equal(t, "s", plural(3))
}
