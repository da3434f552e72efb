package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	renderer, ok := deps.Renderers[c.Format]
	if !ok {
		err := leetdoc.Errorf(leetdoc.EINVALID, "unsupported format %q", c.Format)
		printError(deps, err)
		return err
	}

	set, err := deps.ProblemSets.FindProblemSet(deps.Ctx)
	if err != nil {
		printError(deps, err)
		return err
	}

	problems, err := deps.Problems.FindProblems(deps.Ctx, leetdoc.ProblemFilter{})
	if err != nil {
		printError(deps, err)
		return err
	}
	if len(problems) == 0 {
		err := leetdoc.Errorf(leetdoc.EINVALID, "no problems captured yet: run 'leetdoc capture URL' first")
		printError(deps, err)
		return err
	}

	path := exportPath(c.Path, set.Filename(renderer.Ext()))

	err = fs.WriteFile(path, func(w io.Writer) error {
		return renderer.Render(w, set, problems)
	})
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d problems to %s\n", len(problems), path)
	return nil
}

// exportPath resolves the output file. An empty path or a directory gets
// the problem set's file name.
func exportPath(path, filename string) string {
	if path == "" {
		return filename
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, filename)
	}
	return path
}
