// Package solver identifies which evolutionary solver produced a fitness log.
package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Variant is one of the two upstream solvers whose logs can be plotted.
type Variant int

const (
	// GA is the classic genetic algorithm.
	GA Variant = iota
	// NEAT is the simplified topology-evolving solver.
	NEAT
)

// ErrInvalidToken is returned by Parse for anything other than "ga" or "neat".
var ErrInvalidToken = errors.New("invalid solver token")

// ErrNoSelection is returned by Prompt when input ends before a valid token.
var ErrNoSelection = errors.New("no solver selected")

// Variants lists every known variant in menu order.
var Variants = []Variant{GA, NEAT}

// String returns the lowercase token accepted by Parse.
func (v Variant) String() string {
	switch v {
	case GA:
		return "ga"
	case NEAT:
		return "neat"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Label is the upper-case name used in progress messages.
func (v Variant) Label() string { return strings.ToUpper(v.String()) }

// Parse maps a selector token to a Variant. Case and surrounding
// whitespace are ignored.
func Parse(token string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "ga":
		return GA, nil
	case "neat":
		return NEAT, nil
	}
	return 0, fmt.Errorf("%w: %q (want ga or neat)", ErrInvalidToken, token)
}

// Prompt asks on out for a solver and reads answers line by line from in
// until one parses. It only returns a Variant for a valid token.
func Prompt(in io.Reader, out io.Writer) (Variant, error) {
	fmt.Fprintln(out, "Choose the solver to visualize:")
	fmt.Fprintln(out, "1. Classic GA (type 'ga')")
	fmt.Fprintln(out, "2. Simplified NEAT (type 'neat')")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		v, err := Parse(scanner.Text())
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(out, "Invalid choice. Please type 'ga' or 'neat':")
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	return 0, ErrNoSelection
}
