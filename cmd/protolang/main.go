// Command protolang reconstructs a phylogenetic tree of natural languages
// from IPA vocabularies, and optionally reconstructs proto-lexica for its
// internal nodes.
//
// Subcommands:
//
//	protolang build --catalogue path.csv --tables-dir ./tables --tree-out tree.json
//	protolang reconstruct --catalogue path.csv --tables-dir ./tables --tree-out tree_with_languages.json
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/histling/protolang"
	"github.com/spf13/cobra"
)

var (
	catalogPath       string
	tablesDir         string
	minWords          int
	treeOut           string
	phonemeMatrixCSV  string
	languageMatrixCSV string
	threshold         float64
	verbose           bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "protolang",
		Short: "Reconstruct language phylogenies from IPA vocabularies",
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalogue", "", "path to the vocabulary catalogue CSV (required)")
	root.PersistentFlags().StringVar(&tablesDir, "tables-dir", "./tables", "directory holding the gob-encoded linguistic tables")
	root.PersistentFlags().IntVar(&minWords, "min-words", 40, "drop languages with a word count at or below this threshold")
	root.PersistentFlags().StringVar(&treeOut, "tree-out", "tree.json", "path to write the resulting tree as JSON")
	root.PersistentFlags().StringVar(&phonemeMatrixCSV, "phoneme-matrix-csv", "", "optional path to dump the phoneme distance matrix as CSV")
	root.PersistentFlags().StringVar(&languageMatrixCSV, "language-matrix-csv", "", "optional path to dump the language distance matrix as CSV")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "print the tree outline to stderr after building it")
	root.MarkPersistentFlagRequired("catalogue")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newReconstructCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build a phylogenetic tree from a vocabulary catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			pipeline, languages, err := prepare(logger)
			if err != nil {
				return err
			}

			pdm, err := pipeline.BuildPhonemeDistanceMatrix(languages, phonemeMatrixCSV)
			if err != nil {
				return err
			}
			ldm, err := pipeline.BuildLanguageDistanceMatrix(languages, pdm, languageMatrixCSV)
			if err != nil {
				return err
			}
			tree, err := pipeline.BuildTree(ldm)
			if err != nil {
				return err
			}
			if verbose {
				logger.Info("tree built", "outline", "\n"+tree.Sprint())
			}
			return writeTreeJSON(treeOut, tree)
		},
	}
}

func newReconstructCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Build a tree and reconstruct proto-lexica for its internal nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			pipeline, languages, err := prepare(logger)
			if err != nil {
				return err
			}

			pdm, err := pipeline.BuildPhonemeDistanceMatrix(languages, phonemeMatrixCSV)
			if err != nil {
				return err
			}
			ldm, err := pipeline.BuildLanguageDistanceMatrix(languages, pdm, languageMatrixCSV)
			if err != nil {
				return err
			}
			tree, err := pipeline.BuildTree(ldm)
			if err != nil {
				return err
			}
			pipeline.Reconstruct(tree, pdm, threshold)
			if verbose {
				logger.Info("tree reconstructed", "outline", "\n"+tree.Sprint())
			}
			return writeTreeJSON(treeOut, tree)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", protolang.DefaultReconstructionThreshold, "distance-ratio threshold for the synonymy-union vs. merge decision")
	return cmd
}

// prepare loads tables and builds languages, common to both subcommands.
func prepare(logger *slog.Logger) (*protolang.Pipeline, []*protolang.Language, error) {
	pipeline, err := protolang.NewPipeline(tablesDir, logger)
	if err != nil {
		return nil, nil, err
	}
	languages, err := pipeline.BuildLanguagesFromCatalogue(catalogPath, minWords)
	if err != nil {
		return nil, nil, err
	}
	return pipeline, languages, nil
}

func writeTreeJSON(path string, tree *protolang.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(protolang.ToTreeNode(tree.Root))
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
