package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/txt2html/internal/linkdict"
)

// dictCommand groups link-dictionary maintenance subcommands against the
// Conversion Store: checking a dictionary file compiles, and saving/loading/
// listing/deleting named dictionaries.
func dictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "manage link dictionaries",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(
		dictCheckCommand(),
		dictSaveCommand(),
		dictListCommand(),
		dictDeleteCommand(),
	)
	return cmd
}

func dictCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "compile a link dictionary file and report its rule count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0]) //nolint:gosec // operator-supplied dictionary path
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			dict, err := linkdict.Compile(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			cmd.Printf("%s: %d rule(s) compiled ok\n", args[0], dict.Len())
			return nil
		},
	}
}

func dictSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "compile and save a link dictionary under a name in the Conversion Store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			ctx := cmd.Context()
			_, _, store, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			defer func() { runErr = closeStore(store, runErr) }()

			data, err := os.ReadFile(args[1]) //nolint:gosec // operator-supplied dictionary path
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}
			if err := store.SaveDictionary(ctx, args[0], string(data)); err != nil {
				return fmt.Errorf("failed to save dictionary %q: %w", args[0], err)
			}
			cmd.Printf("saved dictionary %q\n", args[0])
			return nil
		},
	}
}

func dictListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list dictionaries saved in the Conversion Store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			ctx := cmd.Context()
			_, _, store, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			defer func() { runErr = closeStore(store, runErr) }()

			const pageSize = 100
			var after string
			for {
				records, next, err := store.ListDictionaries(ctx, after, pageSize)
				if err != nil {
					return fmt.Errorf("failed to list dictionaries: %w", err)
				}
				for _, rec := range records {
					cmd.Printf("%s\t%d rule(s)\t%s\n", rec.Name, rec.RuleCount, rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
				}
				if next == "" {
					return nil
				}
				after = next
			}
		},
	}
}

func dictDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "delete a dictionary from the Conversion Store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			ctx := cmd.Context()
			_, _, store, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			defer func() { runErr = closeStore(store, runErr) }()

			if err := store.DeleteDictionary(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete dictionary %q: %w", args[0], err)
			}
			cmd.Printf("deleted dictionary %q\n", args[0])
			return nil
		},
	}
}
