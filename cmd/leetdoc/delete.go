package main

import (
	"fmt"

	"github.com/fwojciec/leetdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return leetdoc.Errorf(leetdoc.EINVALID, "use --force to confirm deletion")
	}

	problem, err := deps.Problems.FindProblemByID(deps.Ctx, c.ID)
	if err != nil {
		if leetdoc.ErrorCode(err) == leetdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: problem %q not found. Use 'leetdoc list' to see captured problems.\n", c.ID)
			return err
		}
		printError(deps, err)
		return err
	}

	if err := deps.Problems.DeleteProblem(deps.Ctx, problem.ID); err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", problem.Name)
	return nil
}
