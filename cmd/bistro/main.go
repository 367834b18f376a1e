package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Bistro Boss — restaurant ordering API",
	Long:  "Bistro Boss is the backend for the restaurant ordering platform: menu, carts, payments and the admin dashboard.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
}
