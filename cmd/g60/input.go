package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput returns the first argument as bytes, or everything on
// stdin when no argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// readEncoded is readInput for encoded strings: a trailing newline
// from a pipe would otherwise fail verification.
func readEncoded(args []string) (string, error) {
	data, err := readInput(args)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
