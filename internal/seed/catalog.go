package seed

import (
	"time"

	"talent-match/internal/domain"
	"talent-match/internal/service"
)

// Catalog es el conjunto de datos de demo que cargan los binarios.
type Catalog struct {
	Employees []domain.EmployeeProfile
	Jobs      []domain.Job
	Teams     []domain.Team
}

// Build arma el catalogo: tres perfiles detallados, extra empleados generados, puestos y equipos.
// Con la misma semilla en rng el resultado es el mismo salvo LastAssessed.
func Build(gen *service.TraitGenerator, rng service.RandomSource, extra int) Catalog {
	employees := featuredEmployees(gen)
	for i := 0; i < extra; i++ {
		employees = append(employees, rosterEmployee(gen, rng, i))
	}
	return Catalog{
		Employees: employees,
		Jobs:      jobs(),
		Teams:     teams(employees),
	}
}

func jobs() []domain.Job {
	posted := date(2024, time.January, 10)
	return []domain.Job{
		{
			ID:           "job-001",
			CompanyID:    "company-001",
			Title:        "Senior Full-Stack Engineer",
			Department:   "Engineering",
			Location:     "San Francisco, CA",
			Type:         "full-time",
			RemotePolicy: domain.RemotePolicyRemote,
			Description:  "Join our SaaS platform team building products used by thousands of users. We value collaboration and a strong engineering culture, and we optimize for fast feedback.",
			Responsibilities: []string{
				"Design and build user-facing features end to end",
				"Mentor engineers and review code",
			},
			Requirements: domain.JobRequirements{
				Required:  []string{"5+ years of full-stack experience", "Strong TypeScript skills"},
				Preferred: []string{"GraphQL experience", "Experience working in cross-functional teams"},
			},
			Skills: []domain.JobSkill{
				{Name: "React", Required: true},
				{Name: "TypeScript", Required: true},
				{Name: "Node.js", Required: true},
				{Name: "GraphQL", Required: false},
			},
			SalaryRange: domain.SalaryRange{Min: 170000, Max: 220000, Currency: "USD"},
			PostedDate:  posted,
			IdealPersonality: domain.IdealPersonality{
				BigFive:   &domain.PartialBigFive{Openness: domain.IntPtr(75), Conscientiousness: domain.IntPtr(80)},
				MBTITypes: []domain.MBTIType{domain.INTJ, domain.ENTJ, domain.INTP},
				DISC:      &domain.PartialDISC{Dominance: domain.IntPtr(60), Conscientiousness: domain.IntPtr(70)},
			},
			TeamID: "team-platform",
		},
		{
			ID:           "job-002",
			CompanyID:    "company-001",
			Title:        "Lead Designer",
			Department:   "Design",
			Location:     "Austin, TX",
			Type:         "full-time",
			RemotePolicy: domain.RemotePolicyHybrid,
			Description:  "Own the user experience across our product suite and grow a design culture that puts the user first.",
			Responsibilities: []string{
				"Lead user research and usability testing",
				"Evolve the design system with the team",
			},
			Requirements: domain.JobRequirements{
				Required: []string{"Portfolio of shipped products"},
			},
			Skills: []domain.JobSkill{
				{Name: "Figma", Required: true},
				{Name: "User Research", Required: true},
				{Name: "Design Systems", Required: false},
			},
			SalaryRange: domain.SalaryRange{Min: 130000, Max: 170000, Currency: "USD"},
			PostedDate:  posted.AddDate(0, 0, 5),
			IdealPersonality: domain.IdealPersonality{
				BigFive:   &domain.PartialBigFive{Openness: domain.IntPtr(85), Agreeableness: domain.IntPtr(75)},
				MBTITypes: []domain.MBTIType{domain.ENFP, domain.INFP, domain.ENFJ},
				DISC:      &domain.PartialDISC{Influence: domain.IntPtr(70)},
			},
			TeamID: "team-product",
		},
		{
			ID:           "job-003",
			CompanyID:    "company-001",
			Title:        "ML Engineer",
			Department:   "AI",
			Location:     "Boston, MA",
			Type:         "full-time",
			RemotePolicy: domain.RemotePolicyRemote,
			Description:  "Build ML infrastructure serving millions of predictions a day. You will optimize training and inference at scale.",
			Responsibilities: []string{
				"Ship models to production",
				"Improve model serving performance",
			},
			Skills: []domain.JobSkill{
				{Name: "Python", Required: true},
				{Name: "PyTorch", Required: true},
				{Name: "Kubernetes", Required: false},
			},
			SalaryRange: domain.SalaryRange{Min: 180000, Max: 240000, Currency: "USD"},
			PostedDate:  posted.AddDate(0, 0, 12),
			IdealPersonality: domain.IdealPersonality{
				BigFive:   &domain.PartialBigFive{Openness: domain.IntPtr(85), Conscientiousness: domain.IntPtr(80)},
				MBTITypes: []domain.MBTIType{domain.INTP, domain.INTJ},
			},
		},
		{
			ID:           "job-004",
			CompanyID:    "company-001",
			Title:        "DevOps Engineer",
			Department:   "Engineering",
			Location:     "Seattle, WA",
			Type:         "contract",
			RemotePolicy: domain.RemotePolicyOnsite,
			Description:  "Run our cloud infrastructure and CI/CD pipelines.",
			Skills: []domain.JobSkill{
				{Name: "Docker", Required: true},
				{Name: "Kubernetes", Required: true},
				{Name: "Terraform", Required: true},
				{Name: "AWS", Required: false},
			},
			SalaryRange: domain.SalaryRange{Min: 120000, Max: 160000, Currency: "USD"},
			PostedDate:  posted.AddDate(0, 1, 0),
			IdealPersonality: domain.IdealPersonality{
				DISC: &domain.PartialDISC{Steadiness: domain.IntPtr(65), Conscientiousness: domain.IntPtr(75)},
			},
			TeamID: "team-platform",
		},
	}
}

// teams reparte los empleados: los destacados encabezan cada equipo y el roster se alterna.
func teams(employees []domain.EmployeeProfile) []domain.Team {
	joined := date(2023, time.January, 1)
	platform := domain.Team{
		ID:          "team-platform",
		Name:        "Platform",
		Department:  "Engineering",
		Description: "Core platform and infrastructure.",
		Goals:       []string{"Ship the v2 API", "Cut p99 latency in half"},
	}
	product := domain.Team{
		ID:          "team-product",
		Name:        "Product Design",
		Department:  "Design",
		Description: "User research and product design.",
		Goals:       []string{"Launch the new design system"},
	}

	for i, e := range employees {
		m := domain.TeamMember{EmployeeID: e.ID, Role: e.PersonalInfo.Title, JoinedDate: joined}
		switch {
		case e.ID == "emp-001":
			platform.ManagerID = e.ID
			platform.Members = append(platform.Members, m)
		case e.ID == "emp-002":
			product.ManagerID = e.ID
			product.Members = append(product.Members, m)
		case e.ID == "emp-003":
			// candidata libre para simulaciones
		case i%2 == 0:
			platform.Members = append(platform.Members, m)
		default:
			product.Members = append(product.Members, m)
		}
	}
	return []domain.Team{platform, product}
}
