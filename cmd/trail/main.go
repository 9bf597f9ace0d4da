// Package main provides the trail command line front end: a thin shell
// over the recency library for recording and listing recently used
// files, directories, and projects from shell hooks or editor
// integrations.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/trail/pkg/config"
	"github.com/entrhq/trail/pkg/recency"
	"github.com/entrhq/trail/pkg/types"
)

const version = "0.1.0"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	entryStyle  = lipgloss.NewStyle()
	indexStyle  = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "trail: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "-version", "--version", "version":
		fmt.Printf("trail v%s\n", version)
		return nil
	case "-h", "--help", "help":
		usage()
		return nil
	case "push":
		return cmdPush(args[1:])
	case "list":
		return cmdList(args[1:])
	case "clear":
		return cmdClear(args[1:])
	case "remove":
		return cmdRemove(args[1:])
	case "project":
		return cmdProject(args[1:])
	case "path":
		return cmdPath(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// commonFlags registers the flags every subcommand shares and returns
// the bound values.
func commonFlags(fs *flag.FlagSet) (configPath, storePath *string) {
	configPath = fs.String("config", "", "Path to a YAML config file (default: ~/.trail/config.yaml)")
	storePath = fs.String("store", "", "Override the store file location")
	return configPath, storePath
}

func newList(configPath, storePath string) (*recency.List, error) {
	if configPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(home, ".trail", "config.yaml")
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}

	return recency.New(cfg)
}

func cmdPush(args []string) error {
	fs := flag.NewFlagSet("push", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	category := fs.String("category", "files", "Category to push under")
	project := fs.Bool("project", false, "Also record the enclosing version-control root as a project")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("push expects exactly one PATH argument")
	}

	cat, err := types.ParseCategory(*category)
	if err != nil {
		return err
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}

	if *project {
		return list.PushWithProject(cat, fs.Arg(0))
	}
	return list.Push(cat, fs.Arg(0))
}

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	category := fs.String("category", "files", "Category to list")
	plain := fs.Bool("plain", false, "One path per line, no styling (for scripts)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := types.ParseCategory(*category)
	if err != nil {
		return err
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}

	entries, err := list.Get(cat)
	if err != nil {
		return err
	}

	if *plain {
		for _, entry := range entries {
			fmt.Println(entry)
		}
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%d)", cat, len(entries))))
	for i, entry := range entries {
		fmt.Printf("%s %s\n", indexStyle.Render(fmt.Sprintf("%3d", i+1)), entryStyle.Render(entry))
	}
	return nil
}

func cmdClear(args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	category := fs.String("category", "", "Category to clear (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *category == "" {
		return fmt.Errorf("clear requires -category")
	}

	cat, err := types.ParseCategory(*category)
	if err != nil {
		return err
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}
	return list.Clear(cat)
}

func cmdRemove(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	category := fs.String("category", "files", "Category to remove from")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("remove expects exactly one PATH argument")
	}

	cat, err := types.ParseCategory(*category)
	if err != nil {
		return err
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}
	return list.Remove(cat, fs.Arg(0))
}

func cmdProject(args []string) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("project expects exactly one PATH argument")
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}

	root, ok := list.FindVCRoot(fs.Arg(0))
	if !ok {
		return fmt.Errorf("no version-control root above %s", fs.Arg(0))
	}
	fmt.Println(root)
	return nil
}

func cmdPath(args []string) error {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	configPath, storePath := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := newList(*configPath, *storePath)
	if err != nil {
		return err
	}
	fmt.Println(list.StorePath())
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "trail - recently used file tracking\n\n")
	fmt.Fprintf(os.Stderr, "Usage: trail <command> [options] [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  push [-category c] [-project] PATH   Record a path as recently used\n")
	fmt.Fprintf(os.Stderr, "  list [-category c] [-plain]          Show a category, most recent first\n")
	fmt.Fprintf(os.Stderr, "  remove -category c PATH              Drop one entry from a category\n")
	fmt.Fprintf(os.Stderr, "  clear -category c                    Empty a category\n")
	fmt.Fprintf(os.Stderr, "  project PATH                         Print the version-control root above PATH\n")
	fmt.Fprintf(os.Stderr, "  path                                 Print the store file location\n")
	fmt.Fprintf(os.Stderr, "  version                              Show version\n\n")
	fmt.Fprintf(os.Stderr, "Categories: files, directories, projects,\n")
	fmt.Fprintf(os.Stderr, "            remote-files, remote-directories, remote-projects\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  trail push ~/notes/todo.md\n")
	fmt.Fprintf(os.Stderr, "  trail push -category directories -project ~/src/trail\n")
	fmt.Fprintf(os.Stderr, "  trail list -category projects\n")
}
