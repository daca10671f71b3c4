package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/napolitain/proai/internal/loader"
	"github.com/napolitain/proai/internal/logging"
	"github.com/napolitain/proai/internal/models"
	"github.com/napolitain/proai/internal/purchase"
	"github.com/napolitain/proai/internal/ruleset"
	"github.com/napolitain/proai/internal/units"
)

var (
	rulesetFile          string
	playerName           string
	enemyDistance        int
	ownedUnits           string
	queuedUnits          string
	needDestroyer        bool
	carrierCapacity      int
	localCarrierCapacity int
	sortBy               string
	logLevel             string
	quiet                bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "purchase",
		Short: "Purchase option valuation",
		Long: `Scores every unit a player can buy for each use case (fodder,
attacker, defender, sea defense, amphibious assault, transport)
in a given regional context.`,
		RunE: runScores,
	}

	rootCmd.Flags().StringVarP(&rulesetFile, "ruleset", "r", "", "Path to ruleset file (.json, .yaml, .hcl); built-in classic if empty")
	rootCmd.Flags().StringVarP(&playerName, "player", "p", "", "Player to value purchases for (default first player)")
	rootCmd.Flags().IntVarP(&enemyDistance, "distance", "d", 3, "Distance to nearest enemy territory")
	rootCmd.Flags().StringVarP(&ownedUnits, "owned", "o", "", "Owned local units, e.g. infantry=3,artillery=1")
	rootCmd.Flags().StringVarP(&queuedUnits, "queued", "u", "", "Units already queued for placement")
	rootCmd.Flags().BoolVar(&needDestroyer, "need-destroyer", false, "Sea zone needs a destroyer")
	rootCmd.Flags().IntVar(&carrierCapacity, "carrier-capacity", 0, "Unused carrier capacity for new air units")
	rootCmd.Flags().IntVar(&localCarrierCapacity, "local-carrier-capacity", 0, "Unused carrier capacity in the sea zone")
	rootCmd.Flags().StringVarP(&sortBy, "sort", "s", purchase.Attacker.String(), "Use case to sort by")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg := logging.DefaultConfig()
	cfg.Level = logLevel
	if err := logging.Initialize(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Close()

	sortCase, err := purchase.ParseUseCase(sortBy)
	if err != nil {
		return err
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Purchase Option Scores   │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	rules, err := loadRuleset(rulesetFile)
	if err != nil {
		return err
	}

	player, err := selectPlayer(rules, playerName)
	if err != nil {
		return err
	}

	owned, err := parseUnits(ownedUnits, player, rules)
	if err != nil {
		return fmt.Errorf("--owned: %w", err)
	}
	queued, err := parseUnits(queuedUnits, player, rules)
	if err != nil {
		return fmt.Errorf("--queued: %w", err)
	}

	options, err := purchase.NewOptions(rules.ProductionRules(player), player, rules)
	if err != nil {
		// Options that built are still worth showing
		logging.Warn("some production rules could not be valued", zap.Error(err))
	}
	if len(options) == 0 {
		return fmt.Errorf("no purchase options for %s", player.Name)
	}

	region := purchase.Region{
		EnemyDistance:              enemyDistance,
		OwnedLocalUnits:            owned,
		UnitsToPlace:               queued,
		NeedDestroyer:              needDestroyer,
		UnusedCarrierCapacity:      carrierCapacity,
		UnusedLocalCarrierCapacity: localCarrierCapacity,
	}

	if !quiet {
		infoColor.Printf("📦 Ruleset %q, player %s, %d options, enemy distance %d\n",
			rules.Name(), player.Name, len(options), enemyDistance)
		infoColor.Printf("🪖 Owned: %s | Queued: %s\n\n", describePool(owned), describePool(queued))
	}

	rows := scoreOptions(options, rules, region, sortCase)
	printScores(rows, sortCase)
	return nil
}

func loadRuleset(path string) (*ruleset.Ruleset, error) {
	if path == "" {
		return ruleset.Classic(), nil
	}
	r, err := loader.LoadRuleset(path)
	if err != nil {
		return nil, err
	}
	logging.Info("loaded ruleset", zap.String("path", path), zap.String("name", r.Name()))
	return r, nil
}

func selectPlayer(r *ruleset.Ruleset, name string) (*models.Player, error) {
	if name == "" {
		players := r.Players()
		if len(players) == 0 {
			return &models.Player{Name: "neutral"}, nil
		}
		return players[0], nil
	}
	p, ok := r.Player(name)
	if !ok {
		return nil, fmt.Errorf("unknown player %q", name)
	}
	return p, nil
}

// parseUnits reads a list like "infantry=3,artillery" into units owned by player
func parseUnits(list string, player *models.Player, r *ruleset.Ruleset) ([]models.Unit, error) {
	var pool []models.Unit
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, countStr, hasCount := strings.Cut(part, "=")
		count := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid count in %q", part)
			}
			count = n
		}
		name = strings.TrimSpace(name)
		if _, ok := r.UnitStats(name, player); !ok {
			return nil, fmt.Errorf("unknown unit type %q (known: %s)", name, strings.Join(r.UnitNames(), ", "))
		}
		pool = append(pool, units.Create(name, player, count)...)
	}
	return pool, nil
}

// describePool summarizes a pool as "3 infantry, 1 artillery" in type order
func describePool(pool []models.Unit) string {
	if len(pool) == 0 {
		return "none"
	}
	counts := units.Tally(pool)
	parts := make([]string, 0, len(counts))
	for _, t := range units.Types(pool) {
		parts = append(parts, fmt.Sprintf("%d %s", counts[t], t))
	}
	return strings.Join(parts, ", ")
}

type scoreRow struct {
	option *purchase.Option
	scores map[purchase.UseCase]float64
}

// scoreOptions evaluates every use case and orders rows by sortBy, best first
func scoreOptions(options []*purchase.Option, data models.GameData, region purchase.Region, sortBy purchase.UseCase) []scoreRow {
	rows := make([]scoreRow, 0, len(options))
	for _, o := range options {
		row := scoreRow{option: o, scores: make(map[purchase.UseCase]float64)}
		for _, u := range purchase.AllUseCases() {
			row.scores[u] = o.Score(u, data, region)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := sortKey(rows[i].scores[sortBy]), sortKey(rows[j].scores[sortBy])
		if si != sj {
			return si > sj
		}
		return rows[i].option.ProductionRule().Name < rows[j].option.ProductionRule().Name
	})
	return rows
}

// sortKey orders NaN scores after every other score
func sortKey(score float64) float64 {
	if math.IsNaN(score) {
		return math.Inf(-1)
	}
	return score
}

func printScores(rows []scoreRow, sortBy purchase.UseCase) {
	header := []string{"Rule", "Costs", "Moves", "Qty", "HP", "Cost/HP"}
	for _, u := range purchase.AllUseCases() {
		name := u.String()
		if u == sortBy {
			name += " ▼"
		}
		header = append(header, name)
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))

	for _, r := range rows {
		o := r.option
		row := []string{
			o.ProductionRule().Name,
			formatCosts(o.Costs()),
			fmt.Sprintf("%d", o.Movement()),
			fmt.Sprintf("%d", o.Quantity()),
			fmt.Sprintf("%d", o.HitPoints()),
			formatCostPerHitPoint(o.CostPerHitPoint()),
		}
		for _, u := range purchase.AllUseCases() {
			// Units that cannot be transported have no amphibious value
			if u == purchase.Amphib && o.TransportCost() == 0 {
				row = append(row, "-")
				continue
			}
			if u == purchase.SeaDefense && !o.IsSea() && !o.IsAir() {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.3e", r.scores[u]))
		}
		table.Append(row)
	}
	table.Render()
}

// formatCosts renders every resource of a cost map, e.g. "12 PUs, 1 techTokens"
func formatCosts(costs models.ResourceMap) string {
	parts := make([]string, 0, len(costs))
	for _, name := range costs.Names() {
		parts = append(parts, fmt.Sprintf("%d %s", costs[name], name))
	}
	return strings.Join(parts, ", ")
}

func formatCostPerHitPoint(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}
