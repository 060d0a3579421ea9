// Command template-switch-generator trains an n-gram Markov model from
// sequence data and samples synthetic reference/query sequence pairs
// from it via a randomized stream of edits.
package main

import (
	"fmt"
	"os"

	"github.com/sebschmi/template-switch-generator/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create-n-gram-model":
		cli.CreateNGramModel(os.Args[2:])
	case "generate-pair":
		cli.GeneratePair(os.Args[2:])
	case "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: template-switch-generator <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  create-n-gram-model   train a model from a FASTA file")
	fmt.Fprintln(os.Stderr, "  generate-pair         sample an ancestor and derive a reference/query pair")
}
