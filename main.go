package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eleven-am/vpcreaper/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vpcreaper",
		Short: "Remove those pesky AWS default VPCs",
	}

	rootCmd.AddCommand(cmd.NewReapCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
