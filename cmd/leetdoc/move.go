package main

import (
	"fmt"

	"github.com/fwojciec/leetdoc"
)

// Run executes the move command.
func (c *MoveCmd) Run(deps *Dependencies) error {
	problem, err := deps.Problems.FindProblemByID(deps.Ctx, c.ID)
	if err != nil {
		printError(deps, err)
		return err
	}

	if err := deps.Problems.MoveProblem(deps.Ctx, c.ID, leetdoc.Direction(c.Direction)); err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Moved %q %s\n", problem.Name, c.Direction)
	return nil
}
