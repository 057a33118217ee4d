package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

const (
	namePrompt = "Hi! whats your name?"
	agePrompt  = "whats your age?"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Greet you by name and age",
	Long: `Asks for your name and age, then greets you.

The age must be a whole number of years; anything else aborts.`,
	Args: cobra.NoArgs,
	RunE: runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command, _ []string) error {
	if greeterService == nil {
		return errors.New("greeter service not configured")
	}

	reader := newLineReader(cmd)

	name, err := reader.ask(namePrompt)
	if err != nil {
		return err
	}
	age, err := reader.ask(agePrompt)
	if err != nil {
		return err
	}

	greeting, err := greeterService.Greet(name, age)
	if err != nil {
		return err
	}

	cmd.Println(greeting.String())
	return nil
}
