// Command std140layout prints the std140 layout of WGSL structs next to the
// WGSL layout naga computes for them, and flags members whose offsets
// disagree.
//
// Usage:
//
//	std140layout -wgsl shader.wgsl [-struct Uniforms] [-strict] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	mintstd140 "github.com/chubei/mint-std140"
	"github.com/chubei/mint-std140/wgslcheck"
)

func main() {
	var (
		path    = flag.String("wgsl", "", "WGSL source file")
		name    = flag.String("struct", "", "struct to report (default: all structs)")
		strict  = flag.Bool("strict", false, "exit with status 1 if any layout differs")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mintstd140.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read %s: %v", *path, err)
	}
	shader, err := wgslcheck.Parse(string(src))
	if err != nil {
		log.Fatalf("parse %s: %v", *path, err)
	}

	names := shader.Structs()
	if *name != "" {
		names = []string{*name}
	}

	differs := false
	for _, n := range names {
		d, err := report(os.Stdout, shader, n)
		if err != nil {
			log.Printf("%s: %v", n, err)
			continue
		}
		differs = differs || d
	}
	if *strict && differs {
		os.Exit(1)
	}
}

// report prints the layout table of one struct and reports whether the
// std140 and WGSL layouts differ.
func report(w io.Writer, shader *wgslcheck.Shader, name string) (bool, error) {
	members, err := shader.Struct(name)
	if err != nil {
		return false, err
	}
	block, err := shader.Std140(name)
	if err != nil {
		return false, err
	}
	mismatches, err := wgslcheck.Compare(block, shader, name)
	if err != nil {
		return false, err
	}
	span, err := shader.Span(name)
	if err != nil {
		return false, err
	}

	fmt.Fprintf(w, "struct %s\n", name)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  member\ttype\twgsl\tstd140\t")
	for _, m := range members {
		off, _ := block.Offset(m.Name)
		mark := ""
		if off != m.Offset {
			mark = "*"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%s\n", m.Name, m.Kind, m.Offset, off, mark)
	}
	fmt.Fprintf(tw, "  (size)\t\t%d\t%d\t\n", span, block.Layout().Size)
	if err := tw.Flush(); err != nil {
		return false, err
	}
	for _, m := range mismatches {
		fmt.Fprintf(w, "  ! %s\n", m)
	}
	fmt.Fprintln(w)
	return len(mismatches) > 0, nil
}
