package main

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/villagers/internal/config"
	"github.com/KirkDiggler/villagers/internal/render"
	"github.com/KirkDiggler/villagers/internal/services/villager"
	"github.com/KirkDiggler/villagers/internal/tables"
)

var plainFlag bool

var rootCmd = &cobra.Command{
	Use:   "villagers [count]",
	Short: "Generate villager character sheets",
	Long: `villagers rolls up fictional villager character sheets for a tabletop
RPG and prints one styled card per villager: name, occupation, look,
ability scores, gear, bond, and moves.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "disable colored output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load .env file if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tbl, err := loadTables(cfg)
	if err != nil {
		return err
	}

	svc := villager.NewService(&villager.ServiceConfig{Tables: tbl})

	count := resolveCount(args, cfg.DefaultCount)
	out, err := svc.GenerateBatch(cmd.Context(), count)
	if err != nil {
		return err
	}

	r := render.New(&render.Config{Plain: plainFlag || cfg.Plain})
	_, err = fmt.Fprint(cmd.OutOrStdout(), r.Render(out))
	return err
}

func loadTables(cfg *config.Config) (*tables.Tables, error) {
	if cfg.TablesDir != "" {
		return tables.LoadDir(cfg.TablesDir)
	}
	return tables.Load()
}

// resolveCount parses the positional count argument. No argument means
// the configured default; a value that is not a number, or a negative
// one, means zero villagers.
func resolveCount(args []string, defaultCount int) int {
	if len(args) == 0 {
		return defaultCount
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
