package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talent-match/internal/domain"
	"talent-match/internal/seed"
	"talent-match/internal/service"
)

type Scenario struct {
	Name  string
	Check func(ctx context.Context, env *checkEnv) (string, bool)
}

type checkEnv struct {
	catalog seed.Catalog
	matcher *service.JobMatcher
}

func (e *checkEnv) employee(id string) domain.EmployeeProfile {
	for _, emp := range e.catalog.Employees {
		if emp.ID == id {
			return emp
		}
	}
	return domain.EmployeeProfile{}
}

func (e *checkEnv) job(id string) domain.Job {
	for _, j := range e.catalog.Jobs {
		if j.ID == id {
			return j
		}
	}
	return domain.Job{}
}

func main() {
	var (
		seedValue int64
		extra     int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "match_check",
		Short: "Runs the matching scenario battery against the demo catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zap.NewNop()
			if verbose {
				logger, _ = zap.NewDevelopment()
			}
			defer logger.Sync()

			rng := service.NewRandomSource(seedValue)
			env := &checkEnv{
				catalog: seed.Build(service.NewTraitGenerator(rng), rng, extra),
				matcher: service.NewJobMatcher(rng, service.NewMemoryMatchCache(0), logger),
			}
			passed, total := run(cmd.Context(), env, scenarios(), verbose)
			fmt.Printf("Tests: %d/%d pasaron\n", passed, total)
			if passed != total {
				return fmt.Errorf("%d scenarios failed", total-passed)
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Int64Var(&seedValue, "seed", 1, "random seed for the demo catalog (0 = time based)")
	cmd.Flags().IntVar(&extra, "employees", 12, "number of generated roster employees")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print scenario details")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, env *checkEnv, list []Scenario, verbose bool) (int, int) {
	passed := 0
	for _, sc := range list {
		if verbose {
			fmt.Printf("=== Ejecutando: %s ===\n", sc.Name)
		}
		detail, ok := sc.Check(ctx, env)
		if ok {
			fmt.Printf("✅ PASS [%s] %s\n", sc.Name, detail)
			passed++
		} else {
			fmt.Printf("❌ FAIL [%s] %s\n", sc.Name, detail)
		}
	}
	return passed, len(list)
}

func scenarios() []Scenario {
	return []Scenario{
		{
			Name: "MBTI idéntico",
			Check: func(context.Context, *checkEnv) (string, bool) {
				got := service.CalculateMBTIMatch(domain.INTJ, domain.INTJ)
				return fmt.Sprintf("score=%d", got), got == 100
			},
		},
		{
			Name: "MBTI complementario",
			Check: func(context.Context, *checkEnv) (string, bool) {
				got := service.CalculateMBTIMatch(domain.ISTJ, domain.ENFP)
				return fmt.Sprintf("score=%d", got), got == 15
			},
		},
		{
			Name: "Big Five sin objetivo",
			Check: func(context.Context, *checkEnv) (string, bool) {
				got := service.CalculateBigFiveMatch(domain.BigFiveTraits{Openness: 90}, domain.PartialBigFive{})
				return fmt.Sprintf("score=%d", got), got == 50
			},
		},
		{
			Name: "Perfiles generados consistentes",
			Check: func(_ context.Context, env *checkEnv) (string, bool) {
				for _, e := range env.catalog.Employees {
					if !e.Personality.MBTI.Consistent() {
						return fmt.Sprintf("%s inconsistente: %+v", e.ID, e.Personality.MBTI), false
					}
				}
				return fmt.Sprintf("%d perfiles", len(env.catalog.Employees)), true
			},
		},
		{
			Name: "Evidencia de proyecto",
			Check: func(ctx context.Context, env *checkEnv) (string, bool) {
				m := env.matcher.Match(ctx, env.employee("emp-001"), env.job("job-001"))
				if len(m.Reasoning) == 0 {
					return "sin razones", false
				}
				ev := m.Reasoning[0].Evidence
				return ev, strings.HasPrefix(ev, "Built Real-time Analytics Dashboard")
			},
		},
		{
			Name: "Ranking de candidatos ordenado",
			Check: func(ctx context.Context, env *checkEnv) (string, bool) {
				ranked := env.matcher.RankCandidates(ctx, env.job("job-003"), env.catalog.Employees)
				for i := 1; i < len(ranked); i++ {
					if ranked[i-1].OverallScore < ranked[i].OverallScore {
						return "orden invertido", false
					}
				}
				if len(ranked) == 0 {
					return "sin candidatos", false
				}
				return fmt.Sprintf("top=%s score=%d", ranked[0].EmployeeID, ranked[0].OverallScore), true
			},
		},
		{
			Name: "Simulación de equipo",
			Check: func(_ context.Context, env *checkEnv) (string, bool) {
				team := env.catalog.Teams[0]
				var members []domain.EmployeeProfile
				for _, id := range team.MemberIDs() {
					members = append(members, env.employee(id))
				}
				sim := service.SimulateAddition(team, members, env.employee("emp-003"))
				return sim.Impact, strings.HasPrefix(sim.Impact, "Adding Dr. Aisha Patel")
			},
		},
	}
}
