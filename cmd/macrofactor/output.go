// ABOUTME: Shared rendering helpers for command output.
// ABOUTME: JSON emission plus placeholder formatting for optional figures.
package main

import (
	"encoding/json"
	"fmt"
)

// printJSON renders any value for --json mode.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printStatus emits the --json write confirmation. Extra key/value pairs are
// merged into the {"status": "ok"} document.
func printStatus(message string, extra map[string]any) error {
	doc := map[string]any{"status": "ok", "message": message}
	for k, v := range extra {
		doc[k] = v
	}
	return printJSON(doc)
}

// fmtOpt renders an optional figure, using an em dash for absent values so
// "no data" never reads as zero.
func fmtOpt(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f", *v)
}

// orZero collapses an optional figure to zero for contexts that need a number.
func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func orString(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
