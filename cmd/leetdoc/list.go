package main

import (
	"fmt"

	"github.com/fwojciec/leetdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	problems, err := deps.Problems.FindProblems(deps.Ctx, leetdoc.ProblemFilter{})
	if err != nil {
		printError(deps, err)
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintln(deps.Stdout, "No problems captured. Use 'leetdoc capture URL' to add one.")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, leetdoc.FormatProblems(problems, true))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Problems (%d total):\n\n", len(problems))
	for i, p := range problems {
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n     %s  %s\n", i+1, p.Name, p.Language, p.ID, p.SubmissionLink)
	}

	return nil
}
