package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/binarytrails/trails"
	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/tags"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: trails new <dir>")
			os.Exit(1)
		}
		err = runNew(os.Args[2])
	case "version":
		fmt.Printf("trails %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`trails - a read-only blog server built with Go, Echo, and templ

Usage:
  trails <command> [arguments]

Commands:
  serve [-config site.yaml]   Serve the site
  check [-config site.yaml]   Load and validate content, report tag collisions
  new <dir>                   Create a new site directory
  version                     Print the trails version
  help                        Show this help message

Examples:
  trails new myblog
  cd myblog && trails serve`)
}

func configFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "site.yaml", "path to the site configuration file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

func runServe(args []string) error {
	path, err := configFlag("serve", args)
	if err != nil {
		return err
	}
	cfg, err := trails.LoadConfig(path)
	if err != nil {
		return err
	}
	log, err := trails.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := trails.New(cfg, nil, trails.WithLogger(log))
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Start(ctx)
}

func runCheck(args []string) error {
	path, err := configFlag("check", args)
	if err != nil {
		return err
	}
	return check(path, os.Stdout)
}

// check loads the site at path and writes a content report to w. Content
// validation problems are written to w and returned as a single error.
func check(path string, w io.Writer) error {
	cfg, err := trails.LoadConfig(path)
	if err != nil {
		return err
	}

	snap, err := trails.NewSource(cfg).Load(context.Background())
	var ve *content.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(w, ve.Error())
		return fmt.Errorf("%d content problem(s)", len(ve.Items))
	}
	if err != nil {
		return err
	}

	index := tags.BuildIndex(snap.Posts)
	fmt.Fprintf(w, "posts:   %d\n", len(snap.Posts))
	fmt.Fprintf(w, "authors: %d\n", len(snap.Authors))
	fmt.Fprintf(w, "tags:    %d\n", len(index))

	collisions := tags.Collisions(snap.Posts)
	if len(collisions) > 0 {
		slugs := make([]string, 0, len(collisions))
		for slug := range collisions {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)
		fmt.Fprintln(w, "\ntag slug collisions:")
		for _, slug := range slugs {
			fmt.Fprintf(w, "  /tags/%s/ <- %q\n", slug, collisions[slug])
		}
	}

	var hashed []tags.Tag
	for _, t := range index {
		if tags.IsFallback(t.Label) {
			hashed = append(hashed, t)
		}
	}
	if len(hashed) > 0 {
		sort.Slice(hashed, func(i, j int) bool { return hashed[i].Slug < hashed[j].Slug })
		fmt.Fprintln(w, "\nhash-derived tag slugs (labels without letters or digits):")
		for _, t := range hashed {
			fmt.Fprintf(w, "  %s <- %q\n", t.Link(), t.Label)
		}
	}
	return nil
}
