package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/capture"
	"github.com/fwojciec/leetdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Problems    leetdoc.ProblemService
	ProblemSets leetdoc.ProblemSetService
	Capturer    *capture.Capturer
	Renderers   map[string]leetdoc.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Capture CaptureCmd `cmd:"" help:"Capture submissions from LeetCode submission pages"`
	Extract ExtractCmd `cmd:"" help:"Extract a submission from a saved HTML page"`
	List    ListCmd    `cmd:"" help:"List captured problems in order"`
	Show    ShowCmd    `cmd:"" help:"Show a captured problem with its code"`
	Edit    EditCmd    `cmd:"" help:"Edit a captured problem"`
	Move    MoveCmd    `cmd:"" help:"Move a problem up or down in the order"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a captured problem"`
	Clear   ClearCmd   `cmd:"" help:"Start a new problem set"`
	Info    InfoCmd    `cmd:"" help:"Show or set the problem set title and student name"`
	Export  ExportCmd  `cmd:"" help:"Export the problem set as a document"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URLs            []string      `arg:"" name:"url" help:"Submission page URLs"`
	RenderWait      time.Duration `default:"2s" help:"Time to let the page render after load"`
	Timeout         time.Duration `default:"10s" help:"Page load timeout"`
	Concurrency     int           `short:"c" default:"2" help:"Concurrent page limit"`
	PagesPerBrowser int           `default:"40" help:"Pages rendered before the browser is replaced"`
	Static          bool          `help:"Fetch pages over plain HTTP instead of a headless browser"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" type:"existingfile" help:"Saved HTML of a rendered submission page"`
	URL  string `required:"" help:"URL or path the page was saved from"`
	Save bool   `help:"Store the extracted submission"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Full bool `help:"Show code for every problem"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Problem ID"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID       string `arg:"" help:"Problem ID"`
	Name     string `help:"New problem name"`
	Language string `help:"New language"`
	Link     string `help:"New submission link"`
	CodeFile string `type:"existingfile" help:"File holding the new code"`
}

// MoveCmd is the "move" subcommand.
type MoveCmd struct {
	ID        string `arg:"" help:"Problem ID"`
	Direction string `arg:"" enum:"up,down" help:"Direction to move (up or down)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Problem ID"`
	Force bool   `help:"Confirm deletion"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm removing the problem set info and all problems"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Title string `help:"Problem set title"`
	By    string `help:"Student name"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path   string `arg:"" optional:"" help:"Output file or directory (default: current directory)"`
	Format string `short:"f" enum:"docx,pdf,md" default:"docx" help:"Document format (docx, pdf, md)"`
}

// printError writes a command error to stderr.
func printError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
}
