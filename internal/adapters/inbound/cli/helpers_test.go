package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/adapters/inbound/cli"
)

var shopFiles = map[string]string{
	"go.mod": "module example.com/shop\n\ngo 1.24\n",
	"main.go": `package main

import (
	"fmt"
	"os"

	"example.com/shop/internal/store"
)

func main() {
	fmt.Println(os.Getenv("SHOP_PORT"), store.Name)
}
`,
	"internal/store/store.go":      "package store\n\nconst Name = \"store\"\n",
	"internal/store/store_test.go": "package store\n\nimport \"testing\"\n\nfunc TestName(t *testing.T) {}\n",
	"Dockerfile":                   "FROM golang:1.24\nEXPOSE 8080\n",
}

func writeShop(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range shopFiles {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	return execute(cmd, args...)
}

func execute(cmd *cobra.Command, args ...string) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}
