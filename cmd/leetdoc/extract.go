package main

import (
	"fmt"
	"os"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		printError(deps, err)
		return err
	}

	sub, err := deps.Capturer.ExtractHTML(c.URL, string(data))
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Name:     %s\n", sub.Name)
	fmt.Fprintf(deps.Stdout, "Language: %s\n", sub.Language)
	fmt.Fprintf(deps.Stdout, "Link:     %s\n\n", sub.SubmissionLink)
	fmt.Fprintln(deps.Stdout, sub.Code)

	if !c.Save {
		return nil
	}

	problem, err := deps.Capturer.Save(deps.Ctx, sub)
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSaved %q (%s)\n", problem.Name, problem.ID)
	return nil
}
