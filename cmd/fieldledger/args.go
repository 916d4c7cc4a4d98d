package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseID parses a positional numeric ID argument, exiting on bad input.
func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		fatal("parse id", fmt.Errorf("%q is not a positive integer", s))
	}
	return id
}

// optInt64 returns a pointer when the flag was set to a positive value.
func optInt64(changed bool, v int64) *int64 {
	if !changed {
		return nil
	}
	return &v
}

// promptLine reads one trimmed line from stdin.
func promptLine(label string) string {
	fmt.Print(label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
