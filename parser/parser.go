// Package parser turns FlatZinc predicate declarations into model.Predicate
// values. Every argument type is resolved against the closed model.Registry;
// any line the grammar rejects aborts the whole parse.
//
// Accepted lines look like:
//
//	predicate int_lin_eq(array [int] of int: as, array [int] of var int: bs, int: c)
//
// Lines starting with '%' are comments.
package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mlwelles/fznGen/model"
)

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	predicateRe  = regexp.MustCompile(`^predicate\s+([^(]+)\((.+)\)$`)
)

// Parse reads all of r and parses it with ParseFile.
func Parse(r io.Reader) ([]model.Predicate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading predicates: %w", err)
	}
	return ParseFile(string(data))
}

// ParseFile parses every declaration in text, in order. Comment and blank
// lines are skipped. The first malformed line fails the whole file; the
// returned error names the line and wraps the underlying *ParsingError.
func ParseFile(text string) ([]model.Predicate, error) {
	var preds []model.Predicate
	for i, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "%") || strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePredicate(line)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", i+1, strings.TrimRight(line, "\r"), err)
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// ParsePredicate parses a single "predicate name(type: arg, ...)" line.
func ParsePredicate(line string) (model.Predicate, error) {
	line = strings.TrimRightFunc(line, isSpace)
	m := predicateRe.FindStringSubmatch(line)
	if m == nil {
		return model.Predicate{}, parsingError(line, ErrMalformedPredicate)
	}

	name, err := ParseIdentifier(m[1])
	if err != nil {
		return model.Predicate{}, err
	}

	// Types never contain commas, so a plain split is enough.
	rawArgs := strings.Split(m[2], ",")
	args := make([]model.Arg, 0, len(rawArgs))
	for _, raw := range rawArgs {
		arg, err := ParseArg(raw)
		if err != nil {
			return model.Predicate{}, err
		}
		args = append(args, arg)
	}

	return model.Predicate{Name: name, Args: args}, nil
}

// ParseArg parses a "type: name" pair.
func ParseArg(s string) (model.Arg, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return model.Arg{}, parsingError(s, ErrMalformedArg)
	}
	rawType := strings.TrimSpace(parts[0])
	rawName := strings.TrimSpace(parts[1])
	if rawType == "" || rawName == "" {
		return model.Arg{}, parsingError(s, ErrMalformedArg)
	}

	td, err := ResolveType(rawType)
	if err != nil {
		return model.Arg{}, err
	}
	name, err := ParseIdentifier(rawName)
	if err != nil {
		return model.Arg{}, err
	}

	return model.Arg{Type: td, Name: fixArgName(name)}, nil
}

// ParseIdentifier validates s as a FlatZinc identifier.
func ParseIdentifier(s string) (model.Identifier, error) {
	if !identifierRe.MatchString(s) {
		return "", parsingError(s, ErrInvalidIdentifier)
	}
	return model.Identifier(s), nil
}

// ResolveType returns the registry entry for a FlatZinc type token.
func ResolveType(token string) (model.TypeDescriptor, error) {
	td, ok := model.Lookup(token)
	if !ok {
		return model.TypeDescriptor{}, parsingError(token, ErrUnknownType)
	}
	return td, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
