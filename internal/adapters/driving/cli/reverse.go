package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

const sentencePrompt = "Enter a sentence: "

var reverseCmd = &cobra.Command{
	Use:   "reverse [sentence...]",
	Short: "Reverse a sentence and upper-case it",
	Long: `Reverses a sentence character by character and upper-cases the result.

Without arguments the sentence is read from standard input. Arguments are
joined with single spaces.`,
	Example: `  drills reverse Hello World
  echo "Hello World" | drills reverse`,
	RunE: runReverse,
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}

func runReverse(cmd *cobra.Command, args []string) error {
	if manipulatorService == nil {
		return errors.New("manipulator service not configured")
	}

	var sentence string
	if len(args) > 0 {
		sentence = strings.Join(args, " ")
	} else {
		line, err := newLineReader(cmd).ask(sentencePrompt)
		if err != nil {
			return err
		}
		sentence = line
	}

	cmd.Println(manipulatorService.Transform(sentence).String())
	return nil
}
