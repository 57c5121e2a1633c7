package seed

import (
	"time"

	"talent-match/internal/domain"
	"talent-match/internal/service"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// featuredEmployees son los perfiles detallados del catalogo de demo.
func featuredEmployees(gen *service.TraitGenerator) []domain.EmployeeProfile {
	return []domain.EmployeeProfile{
		{
			ID: "emp-001",
			PersonalInfo: domain.PersonalInfo{
				Name:     "Sarah Chen",
				Email:    "sarah.chen@example.com",
				Location: "San Francisco, CA",
				Title:    "Senior Full-Stack Engineer",
				Bio:      "Full-stack developer with 7 years of experience building scalable web applications. Enjoys mentoring junior developers.",
			},
			Personality: gen.GeneratePersonalityProfile(domain.INTJ,
				domain.PartialBigFive{Openness: domain.IntPtr(85), Conscientiousness: domain.IntPtr(80)},
				domain.PartialDISC{}),
			Skills: []domain.Skill{
				{Name: "React", Level: domain.SkillExpert, YearsOfExperience: 5, Verified: true},
				{Name: "TypeScript", Level: domain.SkillExpert, YearsOfExperience: 4, Verified: true},
				{Name: "Node.js", Level: domain.SkillAdvanced, YearsOfExperience: 6, Verified: true},
				{Name: "Python", Level: domain.SkillAdvanced, YearsOfExperience: 3, Verified: true},
				{Name: "GraphQL", Level: domain.SkillAdvanced, YearsOfExperience: 3, Verified: true},
				{Name: "AWS", Level: domain.SkillIntermediate, YearsOfExperience: 2},
			},
			Interests: []domain.Interest{
				{Category: "Technology", Topics: []string{"AI/ML", "Web Performance", "Developer Tools"}, Intensity: 90},
				{Category: "Leadership", Topics: []string{"Mentoring", "Tech Talks", "Code Review"}, Intensity: 75},
			},
			WorkExperience: []domain.WorkExperience{
				{
					ID:          "exp-001-1",
					Company:     "TechCorp Inc.",
					Position:    "Senior Full-Stack Engineer",
					StartDate:   date(2021, time.March, 1),
					Description: "Leading development of core platform features and mentoring team members.",
					Achievements: []string{
						"Reduced API response times by 40% through optimization",
						"Mentored 5 junior developers to mid-level positions",
						"Led migration to TypeScript across 15 microservices",
					},
					Skills: []string{"React", "Node.js", "TypeScript", "GraphQL", "PostgreSQL"},
				},
				{
					ID:          "exp-001-2",
					Company:     "StartupXYZ",
					Position:    "Full-Stack Developer",
					StartDate:   date(2018, time.June, 1),
					EndDate:     datePtr(2021, time.February, 28),
					Description: "Built and scaled the core product from MVP to serving 100K+ users.",
					Achievements: []string{
						"Architected and built the initial platform MVP",
						"Implemented CI/CD pipeline reducing deployment time by 70%",
						"Grew engineering team from 3 to 12 members",
					},
					Skills: []string{"React", "Node.js", "MongoDB", "Docker", "AWS"},
				},
			},
			Projects: []domain.Project{
				{
					ID:           "prj-001-1",
					Title:        "Real-time Analytics Dashboard",
					Description:  "Real-time analytics dashboard processing 1M+ events/day with sub-second latency.",
					Role:         "Tech Lead",
					Technologies: []string{"React", "WebSocket", "Redis", "TimescaleDB", "D3.js"},
					StartDate:    date(2022, time.January, 15),
					EndDate:      datePtr(2022, time.August, 30),
					Achievements: []string{
						"Achieved 99.9% uptime",
						"Reduced data processing latency by 60%",
						"Implemented real-time collaboration features",
					},
				},
				{
					ID:           "prj-001-2",
					Title:        "Developer Tooling Platform",
					Description:  "Internal tooling platform used by 200+ engineers daily.",
					Role:         "Lead Developer",
					Technologies: []string{"Next.js", "GraphQL", "PostgreSQL", "Docker"},
					StartDate:    date(2021, time.September, 1),
					EndDate:      datePtr(2022, time.March, 15),
					Achievements: []string{
						"Improved developer productivity by 30%",
						"Achieved 95% user satisfaction score",
					},
				},
			},
			Reviews: []domain.Review{
				{
					ID:               "rev-001-1",
					ReviewerName:     "Michael Torres",
					ReviewerPosition: "Engineering Manager",
					ReviewerCompany:  "TechCorp Inc.",
					Rating:           5,
					Comment:          "Sarah consistently delivers high-quality work and is an exceptional mentor. She elevates the entire team.",
					Skills:           []string{"Leadership", "React", "Mentoring"},
					Date:             date(2023, time.December, 15),
					Verified:         true,
				},
				{
					ID:               "rev-001-2",
					ReviewerName:     "Jessica Liu",
					ReviewerPosition: "Senior Engineer",
					ReviewerCompany:  "TechCorp Inc.",
					Rating:           5,
					Comment:          "Working with Sarah has been incredible. She's always willing to help and her code reviews are thorough.",
					Skills:           []string{"Collaboration", "Code Review"},
					Date:             date(2023, time.November, 20),
					Verified:         true,
				},
			},
			Preferences: domain.Preferences{
				RemoteWork:          true,
				PreferredRoles:      []string{"Senior Engineer", "Tech Lead", "Engineering Manager"},
				PreferredIndustries: []string{"Technology", "SaaS", "AI/ML"},
				MinimumSalary:       domain.IntPtr(180000),
			},
		},
		{
			ID: "emp-002",
			PersonalInfo: domain.PersonalInfo{
				Name:     "Marcus Johnson",
				Email:    "marcus.j@example.com",
				Location: "Austin, TX",
				Title:    "UX/UI Designer",
				Bio:      "Designer crafting user experiences. 5+ years turning complex problems into intuitive interfaces.",
			},
			Personality: gen.GeneratePersonalityProfile(domain.ENFP,
				domain.PartialBigFive{Openness: domain.IntPtr(90), Agreeableness: domain.IntPtr(80)},
				domain.PartialDISC{}),
			Skills: []domain.Skill{
				{Name: "Figma", Level: domain.SkillExpert, YearsOfExperience: 5, Verified: true},
				{Name: "User Research", Level: domain.SkillAdvanced, YearsOfExperience: 5, Verified: true},
				{Name: "Prototyping", Level: domain.SkillExpert, YearsOfExperience: 5, Verified: true},
				{Name: "Design Systems", Level: domain.SkillAdvanced, YearsOfExperience: 3, Verified: true},
				{Name: "HTML/CSS", Level: domain.SkillIntermediate, YearsOfExperience: 4},
			},
			Interests: []domain.Interest{
				{Category: "Design", Topics: []string{"UI/UX", "Design Systems", "Accessibility"}, Intensity: 95},
			},
			WorkExperience: []domain.WorkExperience{
				{
					ID:          "exp-002-1",
					Company:     "DesignHub",
					Position:    "Senior UX/UI Designer",
					StartDate:   date(2020, time.September, 1),
					Description: "Leading design for multiple product lines and establishing design system standards.",
					Achievements: []string{
						"Led redesign that increased user engagement by 45%",
						"Established company-wide design system adopted by 30+ designers",
						"Conducted 50+ user research sessions",
					},
					Skills: []string{"Figma", "User Research", "Design Systems", "Prototyping"},
				},
			},
			Projects: []domain.Project{
				{
					ID:           "prj-002-1",
					Title:        "E-commerce Mobile App Redesign",
					Description:  "Redesign of the mobile shopping experience for 2M+ active users.",
					Role:         "Lead Designer",
					Technologies: []string{"Figma", "Principle", "Maze"},
					StartDate:    date(2022, time.June, 1),
					EndDate:      datePtr(2023, time.January, 15),
					Achievements: []string{
						"35% increase in conversion rate",
						"50% reduction in cart abandonment",
					},
				},
			},
			Reviews: []domain.Review{
				{
					ID:               "rev-002-1",
					ReviewerName:     "Emily Watson",
					ReviewerPosition: "Product Manager",
					ReviewerCompany:  "DesignHub",
					Rating:           5,
					Comment:          "Marcus brings creativity and user-centricity to every project, and his collaboration with engineering is seamless.",
					Skills:           []string{"UX Design", "Collaboration"},
					Date:             date(2023, time.October, 10),
					Verified:         true,
				},
			},
			Preferences: domain.Preferences{
				RemoteWork:          true,
				WillingToRelocate:   true,
				PreferredRoles:      []string{"Senior UX Designer", "Lead Designer", "Design Manager"},
				PreferredIndustries: []string{"Technology", "E-commerce", "SaaS"},
				MinimumSalary:       domain.IntPtr(140000),
			},
		},
		{
			ID: "emp-003",
			PersonalInfo: domain.PersonalInfo{
				Name:     "Dr. Aisha Patel",
				Email:    "aisha.patel@example.com",
				Location: "Boston, MA",
				Title:    "Machine Learning Engineer",
				Bio:      "PhD in Computer Science specializing in ML. 6 years building production ML systems at scale.",
			},
			Personality: gen.GeneratePersonalityProfile(domain.INTP,
				domain.PartialBigFive{Openness: domain.IntPtr(88), Conscientiousness: domain.IntPtr(85)},
				domain.PartialDISC{}),
			Skills: []domain.Skill{
				{Name: "Python", Level: domain.SkillExpert, YearsOfExperience: 8, Verified: true},
				{Name: "TensorFlow", Level: domain.SkillExpert, YearsOfExperience: 5, Verified: true},
				{Name: "PyTorch", Level: domain.SkillAdvanced, YearsOfExperience: 4, Verified: true},
				{Name: "MLOps", Level: domain.SkillAdvanced, YearsOfExperience: 3, Verified: true},
				{Name: "Kubernetes", Level: domain.SkillIntermediate, YearsOfExperience: 2, Verified: true},
			},
			Interests: []domain.Interest{
				{Category: "AI/ML", Topics: []string{"Deep Learning", "NLP", "Responsible AI"}, Intensity: 95},
			},
			WorkExperience: []domain.WorkExperience{
				{
					ID:          "exp-003-1",
					Company:     "AI Innovations Lab",
					Position:    "Senior ML Engineer",
					StartDate:   date(2021, time.January, 15),
					Description: "Building and deploying large-scale ML models for production systems.",
					Achievements: []string{
						"Improved model accuracy by 23% through novel architecture",
						"Reduced inference latency from 500ms to 50ms",
						"Published 3 papers in top-tier conferences",
					},
					Skills: []string{"Python", "TensorFlow", "Kubernetes", "MLOps"},
				},
			},
			Projects: []domain.Project{
				{
					ID:           "prj-003-1",
					Title:        "Multi-lingual NLP System",
					Description:  "NLP system supporting 15 languages.",
					Role:         "ML Lead",
					Technologies: []string{"PyTorch", "Transformers", "FastAPI"},
					StartDate:    date(2022, time.March, 1),
					EndDate:      datePtr(2023, time.June, 30),
					Achievements: []string{
						"Achieved 94% accuracy across all languages",
						"Processing 10M+ requests daily at million-user scale",
					},
				},
			},
			Reviews: []domain.Review{
				{
					ID:               "rev-003-1",
					ReviewerName:     "Prof. Robert Chang",
					ReviewerPosition: "Research Director",
					ReviewerCompany:  "AI Innovations Lab",
					Rating:           5,
					Comment:          "Aisha combines theoretical knowledge with practical implementation, and her attitude shapes our research culture.",
					Skills:           []string{"Machine Learning", "Research"},
					Date:             date(2023, time.December, 1),
					Verified:         true,
				},
			},
			Preferences: domain.Preferences{
				RemoteWork:          true,
				WillingToRelocate:   true,
				PreferredRoles:      []string{"ML Engineer", "Research Scientist", "ML Architect"},
				PreferredIndustries: []string{"AI/ML", "Research", "Technology"},
				MinimumSalary:       domain.IntPtr(200000),
			},
		},
	}
}
