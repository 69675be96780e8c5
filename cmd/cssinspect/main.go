// Command cssinspect loads a directory of stylesheets, builds an
// engine, and prints the indexed rules plus the computed style for a
// selector given on the command line - a terminal-width-aware
// equivalent of §6's print_all/print_style_rules, grounded on the
// toolkit's own terminal-width handling in its renderer package.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rivo/uniseg"
	style "github.com/tekugo/styleengine"
	"github.com/tekugo/styleengine/source"
	"github.com/tekugo/styleengine/value"
	"golang.org/x/term"
)

func main() {
	dir := flag.String("dir", ".", "directory to scan for stylesheets")
	pattern := flag.String("glob", "**/*.css", "doublestar glob matched against -dir")
	selector := flag.String("selector", "", "selector to print the computed style for")
	flag.Parse()

	e, err := style.New(style.Options{SeedKeywords: true})
	if err != nil {
		fmt.Fprintln(os.Stderr, "cssinspect:", err)
		os.Exit(1)
	}
	e.InitValueDefinitions()
	value.RegisterCSSColorNames()

	paths, err := source.DiscoverSheets(*dir, *pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cssinspect:", err)
		os.Exit(1)
	}

	text, err := source.ReadAll(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cssinspect:", err)
		os.Exit(1)
	}

	e.AddStyleSheet(text)

	width := terminalWidth()

	var sb strings.Builder
	e.PrintAll(&sb)
	printWrapped(sb.String(), width)

	if entries := e.Log.Length(); entries > 0 {
		fmt.Printf("\n%d warning(s) while loading %d file(s):\n", entries, len(paths))
		for entry := range e.Log.Iter() {
			printWrapped(entry.String(), width)
		}
	}

	if *selector != "" {
		sel, err := e.CreateSelector(*selector)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cssinspect: invalid selector:", err)
			os.Exit(1)
		}
		decl := e.GetComputedStyle(sel)
		fmt.Printf("\ncomputed style for %q:\n", *selector)
		for key := 0; key < decl.Len(); key++ {
			v, ok := decl.Get(key)
			if !ok {
				continue
			}
			def, ok := e.Properties.LookupByKey(key)
			if !ok {
				continue
			}
			printWrapped(fmt.Sprintf("  %s: %s", def.Name, v.String()), width)
		}
	}
}

// terminalWidth returns the current terminal's column width, falling
// back to 80 when stdout isn't a terminal (e.g. piped output).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// printWrapped writes line wrapped to width columns, measured in
// grapheme clusters rather than bytes or runes so combining marks in,
// e.g., a quoted string value don't throw the wrap off. Each cluster
// counts as one column, so a line holding double-width characters can
// still run wider than width.
func printWrapped(line string, width int) {
	for _, l := range strings.Split(line, "\n") {
		for len(l) > 0 {
			cut := graphemeCut(l, width)
			fmt.Println(l[:cut])
			l = l[cut:]
		}
	}
}

// graphemeCut returns the byte offset of the width-th grapheme cluster
// in s, or len(s) if s is shorter than width clusters.
func graphemeCut(s string, width int) int {
	if width <= 0 {
		return len(s)
	}
	g := uniseg.NewGraphemes(s)
	count := 0
	offset := len(s)
	for g.Next() {
		if count == width {
			start, _ := g.Positions()
			offset = start
			break
		}
		count++
	}
	return offset
}
