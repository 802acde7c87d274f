// ABOUTME: "grocer transcript" subcommand: renders a JSONL transcript as an HTML page
// ABOUTME: Writes to stdout unless -o names a file

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/grocer-go/internal/export"
	"github.com/mauromedda/grocer-go/internal/session"
)

const transcriptUsage = "usage: grocer transcript [-o out.html] <transcript.jsonl>"

func runTranscript(argv []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("grocer transcript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "", "Write HTML to this file instead of stdout")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(transcriptUsage)
	}

	records, err := session.ReadTranscriptFile(fs.Arg(0))
	if err != nil {
		return err
	}
	doc, err := export.Build(records)
	if err != nil {
		return err
	}

	if *outPath == "" {
		return export.ExportHTML(doc, stdout)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *outPath, err)
	}
	if err := export.ExportHTML(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
