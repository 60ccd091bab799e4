// Command cmdparse classifies chat messages read one per line and prints one
// JSON object per message.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/randytsao24/metrobot/internal/api/handlers"
	"github.com/randytsao24/metrobot/internal/command"
	"github.com/randytsao24/metrobot/internal/models"
)

type opts struct {
	Input    string
	Strict   bool
	Lexicon  bool
	HelpText bool
	Version  bool
}

// line is the output record for one classified message
type line struct {
	Text    string          `json:"text"`
	Kind    command.Kind    `json:"kind"`
	Request command.Request `json:"request,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "cmdparse:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	op := &opts{}
	flags := pflag.NewFlagSet("cmdparse", pflag.ContinueOnError)
	flags.StringVarP(&op.Input, "input", "i", "-", "File of messages, one per line, or - for STDIN.")
	flags.BoolVar(&op.Strict, "strict", false, "Reject messages with unconsumed trailing text.")
	flags.BoolVar(&op.Lexicon, "lexicon", false, "Print the recognized stations and categories as YAML and exit.")
	flags.BoolVar(&op.HelpText, "help-text", false, "Print the bot help texts and exit.")
	flags.BoolVar(&op.Version, "version", false, "Print the version and exit.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	switch {
	case op.Version:
		_, err := fmt.Fprintln(stdout, "cmdparse", handlers.Version)
		return err
	case op.Lexicon:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(models.NewLexicon()); err != nil {
			return fmt.Errorf("encoding lexicon: %w", err)
		}
		return enc.Close()
	case op.HelpText:
		_, err := io.WriteString(stdout, command.ScheduleHelp()+"\n"+command.SpendingHelp())
		return err
	}

	in := stdin
	if op.Input != "-" {
		f, err := os.Open(op.Input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	classify := command.Classify
	if op.Strict {
		classify = command.ClassifyStrict
	}
	return classifyLines(in, stdout, classify)
}

func classifyLines(in io.Reader, out io.Writer, classify func(string) command.Request) error {
	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		req := classify(text)
		rec := line{Text: text, Kind: req.Kind()}
		if req.Kind() != command.KindNoMatch {
			rec.Request = req
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
