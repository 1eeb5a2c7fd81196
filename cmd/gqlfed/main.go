package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	gqlfed "github.com/gqlfed/gqlfed"
	"github.com/gqlfed/gqlfed/manifest"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "keys":
		keysCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gqlfed CLI\n\nUsage:\n  gqlfed keys -manifest entities.yaml\n  gqlfed check -manifest entities.yaml refs.json\n\nNotes:\n  - keys prints the declared key fields per entity type.\n  - check validates a JSON array of representations against the manifest.")
}

func keysCmd(args []string) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	var path string
	fs.StringVar(&path, "manifest", "", "entity manifest (YAML)")
	_ = fs.Parse(args)
	if path == "" {
		fs.Usage()
		os.Exit(2)
	}
	m, err := manifest.LoadFile(path)
	if err != nil {
		fatalf("loading manifest: %v", err)
	}
	for _, e := range m.Entities {
		fmt.Printf("%s\t%s\n", e.Name, strings.Join(e.Keys, " "))
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var path string
	fs.StringVar(&path, "manifest", "", "entity manifest (YAML)")
	_ = fs.Parse(args)
	if path == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	m, err := manifest.LoadFile(path)
	if err != nil {
		fatalf("loading manifest: %v", err)
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("reading representations: %v", err)
	}
	refs, err := gqlfed.DecodeRepresentations(data)
	if err != nil {
		printIssues(err)
		os.Exit(1)
	}
	var failed bool
	for i, ref := range refs {
		if iss := m.CheckReference(ref); iss != nil {
			failed = true
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "/%d%s: %s: %s\n", i, it.Path, it.Code, it.Message)
			}
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Printf("ok: %s representations\n", strconv.Itoa(len(refs)))
}

func printIssues(err error) {
	if iss, ok := gqlfed.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", it.Path, it.Code, it.Message)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
