package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/dawg"
)

var (
	flagPrefix   string
	flagSuffix   string
	flagContains string
	flagFrom     string
	flagTo       string
	flagExclFrom bool
	flagExclTo   bool
	flagDesc     bool
	flagLimit    int
)

var findCmd = &cobra.Command{
	Use:   "find [string]",
	Short: "Query a dictionary",
	Long: `Without arguments, lists the dictionary in order, subject to the filter
flags. With a string argument, checks membership and sets the exit code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&flagPrefix, "prefix", "", "only strings beginning with this prefix")
	findCmd.Flags().StringVar(&flagSuffix, "suffix", "", "only strings ending with this suffix")
	findCmd.Flags().StringVar(&flagContains, "contains", "", "only strings containing this substring")
	findCmd.Flags().StringVar(&flagFrom, "from", "", "lower bound (inclusive unless --excl-from)")
	findCmd.Flags().StringVar(&flagTo, "to", "", "upper bound (inclusive unless --excl-to)")
	findCmd.Flags().BoolVar(&flagExclFrom, "excl-from", false, "make --from exclusive")
	findCmd.Flags().BoolVar(&flagExclTo, "excl-to", false, "make --to exclusive")
	findCmd.Flags().BoolVar(&flagDesc, "desc", false, "reverse lexicographic order")
	findCmd.Flags().IntVar(&flagLimit, "limit", 0, "stop after this many results (0 = all)")
}

func runFind(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dict, err := loadDictionary(store, cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if dict.set.Contains(args[0]) {
			fmt.Println("found")
			return nil
		}
		return fmt.Errorf("%q not in dictionary %q", args[0], dict.name)
	}

	q := dawg.Query{
		Prefix:     flagPrefix,
		Substring:  flagContains,
		Suffix:     flagSuffix,
		Descending: flagDesc,
	}
	if cmd.Flags().Changed("from") || flagExclFrom {
		q.From = &dawg.Bound{Value: flagFrom, Inclusive: !flagExclFrom}
	}
	if cmd.Flags().Changed("to") {
		q.To = &dawg.Bound{Value: flagTo, Inclusive: !flagExclTo}
	}

	n := 0
	for s := range dict.set.Find(q) {
		fmt.Println(s)
		n++
		if flagLimit > 0 && n >= flagLimit {
			break
		}
	}
	return nil
}
