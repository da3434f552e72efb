package main

import (
	"fmt"

	"github.com/fwojciec/leetdoc"
)

// Run executes the info command. Without flags it prints the saved info;
// with flags it updates the given fields.
func (c *InfoCmd) Run(deps *Dependencies) error {
	set, err := deps.ProblemSets.FindProblemSet(deps.Ctx)
	if err != nil && leetdoc.ErrorCode(err) != leetdoc.ENOTFOUND {
		printError(deps, err)
		return err
	}

	if c.Title == "" && c.By == "" {
		if err != nil {
			printError(deps, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Title:        %s\n", set.Title)
		fmt.Fprintf(deps.Stdout, "Submitted by: %s\n", set.SubmittedBy)
		return nil
	}

	if set == nil {
		set = &leetdoc.ProblemSet{}
	}
	if c.Title != "" {
		set.Title = c.Title
	}
	if c.By != "" {
		set.SubmittedBy = c.By
	}

	if err := deps.ProblemSets.SaveProblemSet(deps.Ctx, set); err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved problem set %q by %s\n", set.Title, set.SubmittedBy)
	return nil
}
