// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"sable/internal/lexer"
)

const PROMPT = ">> "

// Start reads one line at a time, runs the lexer over it and prints every
// token it produces. The shell performs no parsing and no evaluation.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		l := lexer.New(line)

		for tok, ok := l.Next(); ok; tok, ok = l.Next() {
			fmt.Printf("%s %q\n", tok.Type, tok.Literal)
		}
	}
}
