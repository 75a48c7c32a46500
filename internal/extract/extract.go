// Package extract finds top-level shader function declarations and
// shader-group marker comments in scanned (comment-stripped) text.
//
// A declaration is a qualifier keyword at the start of a line, a return-type
// token run containing no parentheses, an identifier, and an opening
// parenthesis. The parts may be separated by arbitrary whitespace, newlines
// included, so multi-line signatures are recognized. Anything that does not
// match the shape is simply skipped; extraction never fails.
package extract

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"mtlgen/internal/scanner"
)

// Decl is one discovered top-level shader function declaration.
type Decl struct {
	Qualifier Qualifier
	Name      string
	Line      uint32 // 0-based line in the scanned text
}

// Marker is one shader-group marker comment.
type Marker struct {
	Line uint32 // 0-based line in the scanned text
	Name string // raw group-name candidate, unvalidated
}

// Scan extracts declarations and markers from scanned text, both tagged
// with their 0-based line numbers.
func Scan(text string) ([]Decl, []Marker) {
	return matchDecls(tokenize(text)), scanMarkers(text)
}

// token is one whitespace-delimited word, or a lone parenthesis.
type token struct {
	text        string
	line        uint32
	startOfLine bool // first token on its physical line
}

func isTokenBreak(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '(' || b == ')'
}

func tokenize(text string) []token {
	var toks []token
	var line uint32
	startOfLine := true

	i := 0
	for i < len(text) {
		b := text[i]
		switch {
		case b == '\n':
			line++
			startOfLine = true
			i++
		case b == ' ' || b == '\t' || b == '\r':
			i++
		case b == '(' || b == ')':
			toks = append(toks, token{text: text[i : i+1], line: line, startOfLine: startOfLine})
			startOfLine = false
			i++
		default:
			j := i
			for j < len(text) && !isTokenBreak(text[j]) {
				j++
			}
			toks = append(toks, token{text: text[i:j], line: line, startOfLine: startOfLine})
			startOfLine = false
			i = j
		}
	}
	return toks
}

// matchDecls walks the token stream looking for the declaration shape:
// line-anchored qualifier, at least one type token without parentheses,
// identifier, then "(".
func matchDecls(toks []token) []Decl {
	var decls []Decl

	for i := 0; i < len(toks); i++ {
		q, ok := qualifierFromKeyword(toks[i].text)
		if !ok || !toks[i].startOfLine {
			continue
		}

		// Find the opening parenthesis of the parameter list. A closing
		// parenthesis, another line-anchored qualifier, or EOF before it
		// means this is not a declaration.
		j := i + 1
		matched := false
		for ; j < len(toks); j++ {
			if toks[j].text == "(" {
				matched = true
				break
			}
			if toks[j].text == ")" {
				break
			}
			if _, isQ := qualifierFromKeyword(toks[j].text); isQ && toks[j].startOfLine {
				// Restart matching at the inner qualifier.
				j--
				break
			}
		}
		if !matched {
			i = j
			continue
		}

		// toks[i] qualifier, toks[i+1..j-2] return type, toks[j-1] name.
		if j-i < 3 {
			continue
		}
		name := toks[j-1].text
		if !isIdentifier(name) {
			continue
		}
		decls = append(decls, Decl{
			Qualifier: q,
			Name:      name,
			Line:      toks[i].line,
		})
	}

	return decls
}

// isIdentifier reports whether s is a plain C-style identifier. This also
// rejects declarations whose captured name came out empty.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b == '_':
		case b >= '0' && b <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func scanMarkers(text string) []Marker {
	var markers []Marker
	for lineNo, line := range strings.Split(text, "\n") {
		name, ok := scanner.MarkerName(line)
		if !ok {
			continue
		}
		n, err := safecast.Conv[uint32](lineNo)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		markers = append(markers, Marker{Line: n, Name: name})
	}
	return markers
}
