// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"sable/internal/errors"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/token"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sable <file.sbl>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	reporter := errors.NewReporter(path, string(source))

	// The lexical pass always completes; report every ILLEGAL token before
	// attempting to parse.
	hasErrors := false
	l := lexer.New(string(source))
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		if tok.Type == token.ILLEGAL {
			fmt.Print(reporter.FormatIllegalToken(tok))
			hasErrors = true
		}
	}

	p := parser.New(lexer.New(string(source)))
	program, parseErr := p.ParseProgram()
	if parseErr != nil {
		if pe, ok := parseErr.(*parser.ParseError); ok {
			fmt.Print(reporter.FormatParseError(pe))
		} else {
			fmt.Fprintf(os.Stderr, "parse failed: %v\n", parseErr)
		}
		hasErrors = true
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if !hasErrors {
		fmt.Println(program.String())
		color.Green("Successfully processed %s in %s", path, formattedDuration)
	} else {
		color.Red("Parsing failed after %s", formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
