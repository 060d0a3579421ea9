// Package cli implements the two command-line subcommands:
// create-n-gram-model and generate-pair.
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sebschmi/template-switch-generator/internal/alphabet"
	"github.com/sebschmi/template-switch-generator/internal/fastaio"
	"github.com/sebschmi/template-switch-generator/internal/ngrammodel"
	"github.com/sebschmi/template-switch-generator/internal/sequence"
)

// CreateNGramModel trains an NGramModel from a multi-FASTA input and
// writes it to a binary model container.
func CreateNGramModel(args []string) {
	fs := flag.NewFlagSet("create-n-gram-model", flag.ExitOnError)
	inputFasta := fs.String("input-fasta", "", "path to the input FASTA file (default stdin)")
	alphabetID := fs.String("alphabet", "dna", "alphabet identifier")
	output := fs.String("output", "", "path to write the binary model (default stdout)")
	skipUnknown := fs.Bool("skip-unknown-characters", false, "skip characters not in the alphabet instead of failing")
	capitalise := fs.Bool("capitalise-characters", false, "upper-case characters before validation")
	n := fs.Int("n-gram-context-length", 2, "n-gram context length")
	help := fs.Bool("help", false, "print usage and exit")
	fs.Parse(args)
	if *help {
		fs.Usage()
		os.Exit(0)
	}

	alph, err := alphabet.ByIdentifier(*alphabetID)
	if err != nil {
		log.Fatalf("create-n-gram-model: %v", err)
	}

	in := os.Stdin
	if *inputFasta != "" {
		f, err := os.Open(*inputFasta)
		if err != nil {
			log.Fatalf("create-n-gram-model: %v", err)
		}
		defer f.Close()
		in = f
	}

	validChars := make([]byte, alph.Size())
	for i := range validChars {
		validChars[i] = alph.FromIndex(i)
	}

	scanner := fastaio.NewScanner(fastaio.NewReader(in))
	scanner.SkipUnknownCharacters = *skipUnknown
	scanner.CapitaliseCharacters = *capitalise
	scanner.ValidChars = string(validChars)

	var sequences [][]int
	for scanner.Next() {
		rec := scanner.Seq()
		sequences = append(sequences, sequence.FromChars(rec.Seq, alph).Indices())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("create-n-gram-model: %v", err)
	}

	model, err := ngrammodel.FromSequences(*n, alph, sequences)
	if err != nil {
		log.Fatalf("create-n-gram-model: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create-n-gram-model: %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := model.Encode(out); err != nil {
		log.Fatalf("create-n-gram-model: %v", err)
	}

	fmt.Fprintf(os.Stderr, "trained model: %d contexts\n", model.ContextCount())
}
