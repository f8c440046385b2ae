// Shared helpers for casetrack CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/casetrack/internal/memstore"
)

// openRegistry creates and opens a store registry from the resolved config.
// The caller must defer registry.Close().
func openRegistry() (*memstore.Registry, error) {
	r := memstore.NewRegistry()
	if err := r.Open(storeConfig); err != nil {
		return nil, fmt.Errorf("open stores: %w", err)
	}
	return r, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// confirm prompts on stderr and reads a y/N answer from stdin. Anything
// other than y/yes declines.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
