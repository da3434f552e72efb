package main

import (
	"fmt"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	problem, err := deps.Problems.FindProblemByID(deps.Ctx, c.ID)
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Name:     %s\n", problem.Name)
	fmt.Fprintf(deps.Stdout, "Language: %s\n", problem.Language)
	fmt.Fprintf(deps.Stdout, "Link:     %s\n", problem.SubmissionLink)
	fmt.Fprintf(deps.Stdout, "Position: %d\n\n", problem.Position+1)
	fmt.Fprintln(deps.Stdout, problem.Code)
	return nil
}
