package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	catalogx "github.com/permitpilot/permitpilot/agent/catalog"
	contractx "github.com/permitpilot/permitpilot/agent/contract"
	currencyx "github.com/permitpilot/permitpilot/agent/currency"
	llmx "github.com/permitpilot/permitpilot/agent/llm"
	orchestratorx "github.com/permitpilot/permitpilot/agent/orchestrator"
	packx "github.com/permitpilot/permitpilot/agent/pack"
	statex "github.com/permitpilot/permitpilot/agent/state"
	configx "github.com/permitpilot/permitpilot/pkg/config"
	geoapifyx "github.com/permitpilot/permitpilot/pkg/geoapify"
	_ "github.com/permitpilot/permitpilot/pkg/logger/autoload"
)

type AppConfig struct {
	StateBackend  string `envconfig:"STATE_BACKEND" default:"memory"`
	AgentEnabled  bool   `envconfig:"AGENT_ENABLED" default:"false"`
	LookupEnabled bool   `envconfig:"LOOKUP_ENABLED" default:"false"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	store := newStore(appCfg.StateBackend)

	var locator contractx.Locator
	if appCfg.LookupEnabled {
		lookupCfg := configx.MustNew[geoapifyx.Config]("GEOAPIFY")
		locator = geoapifyx.MustNew(*lookupCfg)
	}

	var caller contractx.AgentCaller
	if appCfg.AgentEnabled {
		llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
		agentCaller, err := llmx.NewCaller(*llmCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize agent caller")
		}
		caller = agentCaller
	}

	synthesizer := packx.NewSynthesizer(catalogx.Default(), currencyx.NewResolver(currencyx.DefaultTable()))
	sink := &consoleSink{out: os.Stdout}

	service, err := orchestratorx.New(store, synthesizer, locator, caller, sink, orchestratorx.Config{
		SeedProfile: seedProfile(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("initialize orchestrator")
	}

	sessionID := uuid.NewString()
	log.Info().
		Str("session_id", sessionID).
		Str("state_backend", appCfg.StateBackend).
		Bool("agent_enabled", appCfg.AgentEnabled).
		Bool("lookup_enabled", appCfg.LookupEnabled).
		Msg("permitpilot ready")

	fmt.Println("Describe your business idea, city, budget, and launch window. I will build the permit plan and update the live panels.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		res, err := service.HandleMessage(context.Background(), sessionID, line)
		if err != nil {
			log.Error().Err(err).Msg("handle message")
			continue
		}
		if res.Summary != "" {
			fmt.Printf("[turn %d, %s] %s\n", res.Turn, res.Phase, res.Summary)
		} else {
			fmt.Printf("[turn %d, %s]\n", res.Turn, res.Phase)
		}
	}

	service.Wait()
}

func newStore(backend string) statex.Store {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "memory":
		return statex.NewMemoryStore()
	case "redis":
		cfg := configx.MustNew[statex.UpstashRedisConfig]("UPSTASH_REDIS")
		store, err := statex.NewUpstashRedisStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize redis store")
		}
		return store
	case "postgres":
		cfg := configx.MustNew[statex.PostgresConfig]("POSTGRES")
		store, err := statex.NewPostgresStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize postgres store")
		}
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("ensure postgres schema")
		}
		return store
	default:
		log.Fatal().Str("backend", backend).Msg("unknown state backend")
		return nil
	}
}

func seedProfile() contractx.BusinessProfile {
	return contractx.BusinessProfile{
		BusinessName:  "Lone Star Bites",
		City:          "Austin",
		State:         "TX",
		Country:       "USA",
		CurrencyCode:  "USD",
		BusinessType:  "Food Truck",
		EntityType:    "LLC",
		Headcount:     2,
		Budget:        5000,
		LaunchWindow:  "45 days",
		RiskTolerance: contractx.RiskMedium,
	}
}

// consoleSink renders the live panels as plain text blocks. It stands in for
// the web dashboard the panels were designed around.
type consoleSink struct {
	out *os.File
}

func (c *consoleSink) UpdateProfile(_ string, profile contractx.BusinessProfile) {
	fmt.Fprintf(c.out, "-- Business Profile --\n")
	fmt.Fprintf(c.out, "  %s, a %s in %s, %s, %s\n",
		orDash(profile.BusinessName), orDash(profile.BusinessType),
		orDash(profile.City), orDash(profile.State), orDash(profile.Country))
	if profile.Budget > 0 {
		fmt.Fprintf(c.out, "  budget %.0f %s, launch window %s, risk tolerance %s\n",
			profile.Budget, orDash(profile.CurrencyCode), orDash(profile.LaunchWindow), orDash(string(profile.RiskTolerance)))
	}
}

func (c *consoleSink) UpdateChecklist(_ string, items []contractx.ChecklistItem, currencyCode, currencyLocale string) {
	fmt.Fprintf(c.out, "-- Permit Checklist --\n")
	for _, item := range items {
		fmt.Fprintf(c.out, "  [%s] %s (%s, due %s, %s)\n",
			item.Status, item.Title, item.Agency, item.DueDate,
			currencyx.Format(item.Cost, currencyCode, currencyLocale))
	}
}

func (c *consoleSink) UpdateTimeline(_ string, milestones []contractx.Milestone) {
	fmt.Fprintf(c.out, "-- Launch Timeline --\n")
	for _, ms := range milestones {
		fmt.Fprintf(c.out, "  [%s] %s (%s, owner %s)\n", ms.Status, ms.Title, ms.TargetDate, ms.Owner)
	}
}

func (c *consoleSink) UpdateActions(_ string, actions []contractx.Action) {
	fmt.Fprintf(c.out, "-- Next Actions --\n")
	for _, action := range actions {
		fmt.Fprintf(c.out, "  [%s] %s (owner %s, eta %s)\n", action.Priority, action.Task, action.Owner, action.ETA)
	}
}

func (c *consoleSink) Notify(_ string, message string) {
	fmt.Fprintf(c.out, "** %s\n", message)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
