package main

import (
	"fmt"
	"os"

	vitapack "github.com/Rusty-VitaSDK/vita-pack-vpk/cmd/vita-pack-vpk"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/styles"
)

func main() {
	rootCmd := vitapack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.IsReported(err) {
			fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		}

		code := errors.ExitCode(err)
		if code == errors.ExitUsage {
			fmt.Fprintln(os.Stderr, vitapack.MsgUsageHint)
		}
		os.Exit(code)
	}
}
