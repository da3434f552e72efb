package main

import (
	"fmt"

	"github.com/fwojciec/leetdoc"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removing all problems\n")
		return leetdoc.Errorf(leetdoc.EINVALID, "use --force to confirm removing all problems")
	}

	if err := deps.ProblemSets.DeleteProblemSet(deps.Ctx); err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintln(deps.Stdout, "Started a new problem set")
	return nil
}
