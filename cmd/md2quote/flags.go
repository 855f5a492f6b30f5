package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	profile        string
	output         string
	style          string
	template       string
	assetDir       string
	date           string
	generateNumber bool
	htmlOnly       bool
	verbose        bool
	version        bool

	args []string // positional: input file, optional output file
}

const usageText = `usage: md2quote [flags] <input.md> [output.pdf]

Renders a Markdown quotation document to PDF using a company profile.

Flags:
`

// parseFlags parses argv (excluding the program name).
func parseFlags(argv []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("md2quote", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&f.profile, "profile", "p", "config", "profile name or path (searched in . and ~/.config/go-md2quote/)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: input name with .pdf or .html extension)")
	fs.StringVar(&f.style, "style", "", "stylesheet name (default: built-in)")
	fs.StringVar(&f.template, "template", "", "layout template name (default: built-in)")
	fs.StringVar(&f.assetDir, "assets", "", "directory with custom templates/ and styles/")
	fs.StringVar(&f.date, "date", "", "quotation date, e.g. 2025-06-01 (default: today)")
	fs.BoolVarP(&f.generateNumber, "generate-number", "n", false, "generate the next quotation number and persist the counter")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML instead of PDF (no browser needed)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	f.args = fs.Args()
	return f, nil
}
