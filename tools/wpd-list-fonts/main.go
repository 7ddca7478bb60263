// seehuhn.de/go/wpd - read WordPerfect files and recover raw byte encodings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"sort"

	expmaps "golang.org/x/exp/maps"

	"seehuhn.de/go/wpd"
	"seehuhn.de/go/wpd/collect"
	"seehuhn.de/go/wpd/tools/internal/buildinfo"
	"seehuhn.de/go/wpd/tools/internal/profile"
)

var (
	passwdArg  = flag.String("p", "", "document password")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wpd-list-fonts — list fonts used in a WordPerfect file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("wpd-list-fonts"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  wpd-list-fonts [options] <file.wpd>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.wpd   one or more WordPerfect files to inspect\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wpd-list-fonts document.wpd\n")
		fmt.Fprintf(os.Stderr, "  wpd-list-fonts -p secret encrypted.wpd\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	for _, fname := range flag.Args() {
		err := listFonts(fname)
		if err != nil {
			return err
		}
	}
	return nil
}

// metaCollector gathers runs like a plain Collector and additionally
// keeps the document metadata.
type metaCollector struct {
	*collect.Collector
	meta wpd.Properties
}

func (c *metaCollector) SetDocumentMetaData(props wpd.Properties) {
	c.meta = maps.Clone(props)
}

func listFonts(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	fmt.Println("loading", fname, "...")
	fmt.Printf("confidence: %s\n", wpd.Probe(data))

	doc, err := wpd.Open(data, &wpd.Options{Password: *passwdArg})
	if err != nil {
		fmt.Println(err)
		fmt.Println()
		return nil
	}

	mc := &metaCollector{Collector: collect.New()}
	res := doc.Parse(mc)

	if len(mc.meta) > 0 {
		fmt.Printf("header: %s\n", mc.meta)
	}
	fmt.Printf("parse result: %s\n", res)

	runs := mc.Runs()
	counts := make(map[string]int)
	for _, run := range runs {
		counts[run.Font]++
	}

	names := slices.Sorted(maps.Keys(counts))
	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})

	fmt.Printf("%d fonts in %d runs\n", len(names), len(runs))
	for _, name := range names {
		fmt.Printf("%5d  %s\n", counts[name], name)
	}
	fmt.Println()

	return nil
}
