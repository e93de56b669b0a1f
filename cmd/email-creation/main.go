package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "email-creation",
		Short: "AI-assisted campaign email creation",
		Long: "Email Creation turns a campaign brief and a contact list into\n" +
			"personalized, ready-to-send HTML emails: the model picks a template,\n" +
			"writes the copy, images are generated per slot, and the result is\n" +
			"rendered and exported or delivered.",
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTemplatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
