package cfgtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/pathql/grammar"
)

const epsToken = "eps"

// startSymbol is the start symbol of every parsed grammar.
const startSymbol = "S"

// Parse reads a grammar in the project's text format. The start symbol is
// always S; a grammar with no rule for S is rejected by Validate with
// grammar.ErrUnknownStart.
func Parse(r io.Reader) (grammar.CFG, error) {
	scanner := bufio.NewScanner(r)
	cfg := grammar.CFG{Start: startSymbol}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 || strings.Contains(parts[1], "->") {
			return grammar.CFG{}, fmt.Errorf("%w at line %d: %q", ErrMalformedRule, lineNo, line)
		}
		head := strings.TrimSpace(parts[0])
		if head == "" {
			return grammar.CFG{}, fmt.Errorf("%w at line %d: %q", ErrMalformedRule, lineNo, line)
		}

		for _, alt := range strings.Split(parts[1], "|") {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				return grammar.CFG{}, fmt.Errorf("%w at line %d: %q", ErrEmptyAlternative, lineNo, line)
			}
			if alt == epsToken {
				cfg.Productions = append(cfg.Productions, grammar.Production{Head: head})
				continue
			}
			var body []grammar.Symbol
			for _, tok := range strings.Fields(alt) {
				body = append(body, symbolFor(tok))
			}
			cfg.Productions = append(cfg.Productions, grammar.Production{Head: head, Body: body})
		}
	}
	if err := scanner.Err(); err != nil {
		return grammar.CFG{}, fmt.Errorf("cfgtext: %w", err)
	}

	return cfg, cfg.Validate()
}

// symbolFor classifies a token as a nonterminal (starts with an uppercase
// letter) or a terminal (anything else).
func symbolFor(tok string) grammar.Symbol {
	r := []rune(tok)[0]
	if unicode.IsUpper(r) {
		return grammar.NT(tok)
	}
	return grammar.Term(tok)
}
