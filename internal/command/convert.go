package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/txt2html/internal/convert"
)

func convertCommand() *cobra.Command {
	var (
		outPath      string
		dictPaths    []string
		dictName     string
		title        string
		titleFirst   bool
		extract      bool
		xhtml        bool
		tables       bool
		mailmode     bool
		linkOnly     bool
		eightBit     bool
		noEscape     bool
		noLinks      bool
		noAnchors    bool
		styleURL     string
	)

	cmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "convert one or more plain-text inputs to an HTML document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			ctx := cmd.Context()

			opts := convert.DefaultOptions()
			opts.Title = title
			opts.TitleFirst = titleFirst
			opts.Extract = extract
			opts.XHTML = xhtml
			opts.MakeTables = tables
			opts.Mailmode = mailmode
			opts.LinkOnly = linkOnly
			opts.EightBitClean = eightBit
			opts.EscapeHTML = !noEscape
			opts.MakeLinks = !noLinks
			opts.MakeAnchors = !noAnchors
			opts.StyleURL = styleURL

			for _, path := range dictPaths {
				data, err := os.ReadFile(path) //nolint:gosec // operator-supplied dictionary path
				if err != nil {
					return fmt.Errorf("failed to read link dictionary %s: %w", path, err)
				}
				opts.LinksDictionaries = append(opts.LinksDictionaries, string(data))
			}
			if dictName != "" {
				_, _, store, err := loadConfig(ctx)
				if err != nil {
					return err
				}
				defer func() { runErr = closeStore(store, runErr) }()
				source, err := store.LoadDictionary(ctx, dictName)
				if err != nil {
					return fmt.Errorf("failed to load saved dictionary %q: %w", dictName, err)
				}
				opts.LinksDictionaries = append(opts.LinksDictionaries, source)
			}

			if len(args) == 1 {
				opts.InputName = args[0]
			}

			converter, err := convert.New(opts)
			if err != nil {
				return fmt.Errorf("invalid conversion options: %w", err)
			}

			inputs, closeInputs, err := openInputs(args)
			if err != nil {
				return err
			}
			defer func() { runErr = errJoin(runErr, closeInputs()) }()

			output, closeOutput, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer func() { runErr = errJoin(runErr, closeOutput()) }()

			return converter.ConvertDocument(inputs, output)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVar(&dictPaths, "dict", nil, "link dictionary file(s), applied in order")
	cmd.Flags().StringVar(&dictName, "dict-name", "", "name of a dictionary saved in the Conversion Store")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().BoolVar(&titleFirst, "title-first", false, "use the first non-blank line as the title")
	cmd.Flags().BoolVar(&extract, "extract", false, "emit the body only, without the document envelope")
	cmd.Flags().BoolVar(&xhtml, "xhtml", false, "emit XHTML-compatible markup")
	cmd.Flags().BoolVar(&tables, "tables", false, "detect whitespace-aligned column tables")
	cmd.Flags().BoolVar(&mailmode, "mailmode", false, "detect mail quoting and headers")
	cmd.Flags().BoolVar(&linkOnly, "link-only", false, "skip structural analysis; only apply link rules")
	cmd.Flags().BoolVar(&eightBit, "eight-bit-clean", false, "pass non-ASCII bytes through instead of entity-escaping them")
	cmd.Flags().BoolVar(&noEscape, "no-escape-html", false, "don't HTML-escape input characters")
	cmd.Flags().BoolVar(&noLinks, "no-links", false, "don't apply any link dictionary")
	cmd.Flags().BoolVar(&noAnchors, "no-anchors", false, "don't emit heading anchors")
	cmd.Flags().StringVar(&styleURL, "style-url", "", "stylesheet URL to link from the document head")

	return cmd
}

func openInputs(args []string) ([]io.Reader, func() error, error) {
	if len(args) == 0 {
		return []io.Reader{os.Stdin}, func() error { return nil }, nil
	}
	files := make([]*os.File, 0, len(args))
	readers := make([]io.Reader, 0, len(args))
	for _, path := range args {
		f, err := os.Open(path) //nolint:gosec // operator-supplied input path
		if err != nil {
			for _, opened := range files {
				_ = opened.Close()
			}
			return nil, nil, fmt.Errorf("failed to open input %s: %w", path, err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return readers, func() error {
		var err error
		for _, f := range files {
			err = errJoin(err, f.Close())
		}
		return err
	}, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) //nolint:gosec // operator-supplied output path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output %s: %w", path, err)
	}
	return f, f.Close, nil
}

func errJoin(errs ...error) error {
	return errors.Join(errs...)
}
