package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/leetdoc"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	var upd leetdoc.ProblemUpdate
	if c.Name != "" {
		upd.Name = &c.Name
	}
	if c.Language != "" {
		upd.Language = &c.Language
	}
	if c.Link != "" {
		upd.SubmissionLink = &c.Link
	}
	if c.CodeFile != "" {
		data, err := os.ReadFile(c.CodeFile)
		if err != nil {
			printError(deps, err)
			return err
		}
		code := string(data)
		upd.Code = &code
	}

	if upd == (leetdoc.ProblemUpdate{}) {
		err := leetdoc.Errorf(leetdoc.EINVALID, "nothing to update: pass --name, --language, --link or --code-file")
		printError(deps, err)
		return err
	}

	problem, err := deps.Problems.UpdateProblem(deps.Ctx, c.ID, upd)
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %q\n", problem.Name)
	return nil
}
