// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// The minimark command parses a Markdown file
// and renders it to stdout.
//
// Usage:
//
//	minimark [-f term|html|md|outline] [file]
//
// With no file argument, minimark reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"zombiezen.com/go/minimark"
	"zombiezen.com/go/minimark/format"
)

func main() {
	outputFormat := flag.String("f", "term", "output `format` (term, html, md, or outline)")
	headingIDs := flag.Bool("ids", false, "give HTML headings id attributes")
	ruleWidth := flag.Int("w", 0, "rule `width` for terminal output")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "minimark",
	})

	source, name, err := readInput(flag.Args())
	if err != nil {
		logger.Fatal("read input", "error", err)
	}

	blocks := minimark.Parse(source)
	logger.Debug("parsed document", "file", name, "blocks", len(blocks))

	switch *outputFormat {
	case "term":
		r := minimark.NewTermRenderer()
		r.Width = *ruleWidth
		err = r.Render(os.Stdout, blocks)
	case "html":
		r := &minimark.HTMLRenderer{HeadingIDs: *headingIDs}
		err = r.Render(os.Stdout, blocks)
		if err == nil {
			_, err = io.WriteString(os.Stdout, "\n")
		}
	case "md":
		err = format.Format(os.Stdout, blocks)
	case "outline":
		err = outline(os.Stdout, blocks)
	default:
		logger.Fatal("unknown output format", "format", *outputFormat)
	}
	if err != nil {
		logger.Fatal("render", "error", err)
	}
}

func readInput(args []string) (source, name string, err error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "stdin", nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	default:
		return "", "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
}

// outline prints the document's headings,
// indented one step per heading level.
func outline(w io.Writer, blocks []*minimark.Block) error {
	var err error
	for _, b := range blocks {
		minimark.Walk(b.AsNode(), &minimark.WalkOptions{
			Pre: func(c *minimark.Cursor) bool {
				if err != nil {
					return false
				}
				blk := c.Node().Block()
				if blk.Kind() != minimark.HeadingKind {
					return true
				}
				indent := strings.Repeat("  ", blk.HeadingLevel()-1)
				_, err = fmt.Fprintf(w, "%s%s\n", indent, blk.PlainText())
				return true
			},
		})
		if err != nil {
			return fmt.Errorf("write outline: %w", err)
		}
	}
	return nil
}
