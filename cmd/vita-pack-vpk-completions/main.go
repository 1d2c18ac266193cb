// Command vita-pack-vpk-completions writes shell completion scripts for
// packaging, one file per shell, named the way each shell looks them up.
//
//	vita-pack-vpk-completions [dir]    (default: completions)
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	vitapack "github.com/Rusty-VitaSDK/vita-pack-vpk/cmd/vita-pack-vpk"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// completionScript pairs a shell with its conventional file name
type completionScript struct {
	shell string
	file  string
	gen   func(root *cobra.Command, buf *bytes.Buffer) error
}

var scripts = []completionScript{
	{"bash", "vita-pack-vpk.bash", func(root *cobra.Command, buf *bytes.Buffer) error {
		return root.GenBashCompletionV2(buf, true)
	}},
	{"zsh", "_vita-pack-vpk", func(root *cobra.Command, buf *bytes.Buffer) error {
		return root.GenZshCompletion(buf)
	}},
	{"fish", "vita-pack-vpk.fish", func(root *cobra.Command, buf *bytes.Buffer) error {
		return root.GenFishCompletion(buf, true)
	}},
	{"powershell", "vita-pack-vpk.ps1", func(root *cobra.Command, buf *bytes.Buffer) error {
		return root.GenPowerShellCompletionWithDesc(buf)
	}},
}

// writeCompletions generates every script into dir and returns the paths written
func writeCompletions(fs afero.Fs, root *cobra.Command, dir string) ([]string, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	written := make([]string, 0, len(scripts))
	for _, s := range scripts {
		var buf bytes.Buffer
		if err := s.gen(root, &buf); err != nil {
			return written, fmt.Errorf("generate %s completion: %w", s.shell, err)
		}

		path := filepath.Join(dir, s.file)
		if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func main() {
	dir := "completions"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	paths, err := writeCompletions(afero.NewOsFs(), vitapack.NewRootCmd(), dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}
