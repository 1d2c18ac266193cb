package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	vitapack "github.com/Rusty-VitaSDK/vita-pack-vpk/cmd/vita-pack-vpk"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/internal/version"
)

func main() {
	rootCmd := vitapack.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "VITA-PACK-VPK",
		Section: "1",
		Source:  "vita-pack-vpk " + version.Version,
		Manual:  "vita-pack-vpk manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
