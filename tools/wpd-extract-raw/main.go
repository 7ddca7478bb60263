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
	"log"
	"os"
	"syscall"

	"golang.org/x/term"

	"seehuhn.de/go/wpd"
	"seehuhn.de/go/wpd/collect"
	"seehuhn.de/go/wpd/reconcile"
	"seehuhn.de/go/wpd/report"
	"seehuhn.de/go/wpd/tools/internal/buildinfo"
	"seehuhn.de/go/wpd/tools/internal/profile"
)

var (
	passwdArg  = flag.String("p", "", "document password")
	jsonArg    = flag.Bool("json", false, "write newline-delimited JSON instead of text")
	quietArg   = flag.Bool("q", false, "suppress warnings and notes on stderr")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wpd-extract-raw — map WordPerfect text back to its raw bytes\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("wpd-extract-raw"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  wpd-extract-raw [options] <file.wpd>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.wpd   one or more WordPerfect files to audit\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wpd-extract-raw old-report.wpd\n")
		fmt.Fprintf(os.Stderr, "  wpd-extract-raw -p secret encrypted.wpd\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	log.SetFlags(0)

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
		err := extract(fname)
		if err != nil {
			return err
		}
	}
	return nil
}

// extract parses fname and writes the reconciliation report to stdout.
// Only an unreadable file is a fatal error.  Anything wrong with the
// file contents is reported on stderr, and whatever text could still
// be collected is reconciled as usual.
func extract(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	if c := wpd.Probe(data); c == wpd.ConfidenceNone && !*quietArg {
		log.Printf("warning: %s is not recognized as a WordPerfect document", fname)
	}

	doc, err := wpd.Open(data, &wpd.Options{Password: *passwdArg})
	if err != nil {
		log.Printf("%s: %v", fname, err)
		return nil
	}

	col, res := parseOnce(doc)

	if res == wpd.ResultPasswordRequired && *passwdArg == "" {
		fmt.Fprintf(os.Stderr, "password for %s: ", fname)
		passwd, err := term.ReadPassword(syscall.Stdin)
		fmt.Fprintln(os.Stderr)
		if err == nil && len(passwd) > 0 {
			doc, err = wpd.Open(data, &wpd.Options{Password: string(passwd)})
			if err != nil {
				return err
			}
			col, res = parseOnce(doc)
		}
	}

	if !res.Success() && !*quietArg {
		log.Printf("%s: parse returned %q, continuing with the runs collected so far",
			fname, res)
	}
	if !col.SawRealFontName() && !*quietArg {
		log.Printf("note: no font names were discovered in %s", fname)
	}

	var sink report.Sink = report.NewWriter(os.Stdout)
	if *jsonArg {
		sink = report.NewJSONWriter(os.Stdout)
	}
	raw := doc.Raw()
	for _, run := range col.Runs() {
		m, ok := reconcile.Reconcile(run.Text, raw)
		if !ok {
			continue
		}
		if err := sink.Record(run, m); err != nil {
			return err
		}
	}
	return nil
}

func parseOnce(doc *wpd.Document) (*collect.Collector, wpd.Result) {
	col := collect.New()
	if !*quietArg {
		col.Warn = func(msg string) {
			log.Printf("warning: %s", msg)
		}
	}
	return col, doc.Parse(col)
}
