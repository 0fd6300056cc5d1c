package main

import (
	"fmt"
	"os"

	"github.com/cortexlinux/cortex/cmd/cortex"
	"github.com/cortexlinux/cortex/pkg/style"
)

func main() {
	rootCmd := cortex.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
