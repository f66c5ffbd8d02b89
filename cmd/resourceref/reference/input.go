// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readReferences resolves the candidate references to operate on. When
// args is non-empty, each arg is one candidate. Otherwise candidates
// are read from reader, one per line. Blank lines and lines starting
// with '#' are skipped so that files of references can carry comments.
// Returns an error when no candidates remain.
func readReferences(args []string, reader io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var candidates []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no references given (pass them as arguments or on stdin)")
	}
	return candidates, nil
}
