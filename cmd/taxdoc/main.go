// Command taxdoc processes extracted document text files from the command
// line without the HTTP service or database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"taxdoc/internal/domain"
	"taxdoc/internal/export"
	"taxdoc/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "write an XLSX summary to this path instead of JSON on stdout")
	concurrency := flag.Int("concurrency", 8, "number of documents processed in parallel")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("usage: taxdoc [-out summary.xlsx] file.txt [file.txt ...]")
	}

	inputs := make([]pipeline.Input, 0, flag.NArg())
	for _, path := range flag.Args() {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, pipeline.Input{
			Filename: filepath.Base(path),
			Text:     string(text),
		})
	}

	processor := pipeline.NewProcessor()
	docs, err := processor.ProcessBatch(context.Background(), inputs, *concurrency)
	if err != nil {
		return fmt.Errorf("processing batch: %w", err)
	}

	results := make([]domain.ProcessedDocument, 0, len(docs))
	for _, d := range docs {
		results = append(results, *d)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *out, err)
		}
		defer f.Close()
		if err := export.WriteXLSX(f, results); err != nil {
			return err
		}
		log.Printf("wrote %d documents to %s", len(results), *out)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
