package cli

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/sebschmi/template-switch-generator/internal/fastaio"
	"github.com/sebschmi/template-switch-generator/internal/modifier"
	"github.com/sebschmi/template-switch-generator/internal/ngrammodel"
	"github.com/sebschmi/template-switch-generator/internal/sequence"
)

const fastaLineWidth = 60

// GeneratePair samples an ancestor from a trained model and derives a
// reference and a query sequence from it via a randomized stream of
// edits, writing both (and optionally the ancestor) to FASTA files.
func GeneratePair(args []string) {
	fs := flag.NewFlagSet("generate-pair", flag.ExitOnError)
	modelPath := fs.String("model", "", "path to the binary model container")
	output := fs.String("output", "", "path to write reference/query FASTA (default stdout)")
	ancestorOutput := fs.String("ancestor-output", "", "optional path to write the sampled ancestor FASTA")
	modificationsOutput := fs.String("modifications-output", "", "optional path to dump the reference and query modification streams")
	ancestorLength := fs.Int("ancestor-length", 1000, "length of the sampled ancestor")
	seed := fs.Uint64("random-seed", 0, "PRNG seed")
	fraction := fs.Float64("reference-ancestry-fraction", 0.5, "reference-ancestry fraction in [0,1]")

	tsMinOffset := fs.Int("ts-min-offset", -50, "template switch minimum offset")
	tsMaxOffset := fs.Int("ts-max-offset", 50, "template switch maximum offset")
	tsMinLength := fs.Int("ts-min-length", 10, "template switch minimum length")
	tsMaxLength := fs.Int("ts-max-length", 50, "template switch maximum length")
	tsMinLengthDifference := fs.Int("ts-min-length-difference", -10, "template switch minimum length difference")
	tsMaxLengthDifference := fs.Int("ts-max-length-difference", 10, "template switch maximum length difference")
	tsMargin := fs.Int("ts-margin", 10, "template switch range margin")
	tsMaximumOverlapTries := fs.Int("ts-maximum-overlap-tries", 100, "maximum template switch overlap retries")
	tsOverlapAllowed := fs.Bool("ts-overlap-allowed", false, "disable the template switch overlap check")

	gapLengthMean := fs.Float64("gap-length-mean", 5, "mean gap length")

	templateSwitchAmount := fs.Int("template-switch-amount", 0, "total template switch edits")
	gapAmount := fs.Int("gap-amount", 0, "total gap edits")
	substitutionAmount := fs.Int("substitution-amount", 0, "total substitution edits")

	help := fs.Bool("help", false, "print usage and exit")
	fs.Parse(args)
	if *help {
		fs.Usage()
		os.Exit(0)
	}

	modelFile, err := os.Open(*modelPath)
	if err != nil {
		log.Fatalf("generate-pair: %v", err)
	}
	model, err := ngrammodel.Decode(modelFile)
	modelFile.Close()
	if err != nil {
		log.Fatalf("generate-pair: %v", err)
	}

	rng := rand.New(rand.NewSource(int64(*seed)))

	ancestorIndices, err := model.GenerateSequence(*ancestorLength, rng)
	if err != nil {
		log.Fatalf("generate-pair: %v", err)
	}
	ancestor := sequence.FromIndices(ancestorIndices, model.Alphabet())

	params := modifier.SequenceModificationParameters{
		TemplateSwitch: modifier.TemplateSwitchParameters{
			MinOffset:            *tsMinOffset,
			MaxOffset:            *tsMaxOffset,
			MinLength:            *tsMinLength,
			MaxLength:            *tsMaxLength,
			MinLengthDifference:  *tsMinLengthDifference,
			MaxLengthDifference:  *tsMaxLengthDifference,
			Margin:               *tsMargin,
			MaximumOverlapTries:  *tsMaximumOverlapTries,
			OverlapAllowed:       *tsOverlapAllowed,
		},
		GapLengthMean: *gapLengthMean,
	}
	amount := modifier.SequenceModificationAmount{
		TemplateSwitchAmount: *templateSwitchAmount,
		GapAmount:            *gapAmount,
		SubstitutionAmount:   *substitutionAmount,
	}

	detector := modifier.NewTemplateSwitchOverlapDetector(*tsMargin)
	pair, err := modifier.NewModifierPair(amount, *fraction, params, detector, model.Alphabet().Size(), rng)
	if err != nil {
		log.Fatalf("generate-pair: %v", err)
	}

	var modificationsFile *os.File
	if *modificationsOutput != "" {
		modificationsFile, err = os.Create(*modificationsOutput)
		if err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
		defer modificationsFile.Close()
	}

	reference := ancestor.Clone()
	if err := pair.Reference.Apply(reference); err != nil {
		log.Fatalf("generate-pair: %v", err)
	}
	if modificationsFile != nil {
		if _, err := fmt.Fprintln(modificationsFile, "# reference"); err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
		if err := detector.WriteModifications(modificationsFile); err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
	}

	detector.ClearModificationStack()

	query := ancestor.Clone()
	if err := pair.Query.Apply(query); err != nil {
		log.Fatalf("generate-pair: %v", err)
	}
	if modificationsFile != nil {
		if _, err := fmt.Fprintln(modificationsFile, "# query"); err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
		if err := detector.WriteModifications(modificationsFile); err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
		defer f.Close()
		out = f
	}
	writer := fastaio.NewWriter(out, fastaLineWidth)
	if err := writer.Write(fastaio.Record{Name: "reference", Seq: reference.Bytes()}); err != nil {
		log.Fatalf("generate-pair: %v", err)
	}
	if err := writer.Write(fastaio.Record{Name: "query", Seq: query.Bytes()}); err != nil {
		log.Fatalf("generate-pair: %v", err)
	}

	if *ancestorOutput != "" {
		f, err := os.Create(*ancestorOutput)
		if err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
		defer f.Close()
		aw := fastaio.NewWriter(f, fastaLineWidth)
		if err := aw.Write(fastaio.Record{Name: "ancestor", Seq: ancestor.Bytes()}); err != nil {
			log.Fatalf("generate-pair: %v", err)
		}
	}
}
