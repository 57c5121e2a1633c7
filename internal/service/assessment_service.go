package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-match/internal/domain"
	"talent-match/internal/repository"
)

var (
	ErrAssessmentNotConfigured = errors.New("assessment service not configured")
	ErrUnknownFramework        = errors.New("unknown assessment framework")
	ErrIncompleteAssessment    = errors.New("incomplete assessment")
	ErrInvalidAnswer           = errors.New("invalid assessment answer")
	ErrInvalidEmployee         = errors.New("invalid employee id")
)

const (
	minAnswer = 1
	maxAnswer = 5
	// 8 items por eje, cada uno aporta como maximo |5-3|.
	mbtiAxisMaxSum = 16
)

// AssessmentService puntua cuestionarios Likert y fusiona los resultados en el perfil.
type AssessmentService struct {
	assessments repository.AssessmentRepository
	employees   repository.EmployeeRepository
	cache       MatchCache
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string
}

func NewAssessmentService(assessments repository.AssessmentRepository, employees repository.EmployeeRepository, cache MatchCache, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		assessments: assessments,
		employees:   employees,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Questions devuelve una copia del cuestionario del framework.
func Questions(framework domain.Framework) ([]domain.AssessmentQuestion, error) {
	var src []domain.AssessmentQuestion
	switch framework {
	case domain.FrameworkBigFive:
		src = bigFiveQuestions
	case domain.FrameworkDISC:
		src = discQuestions
	case domain.FrameworkMBTI:
		src = mbtiQuestions
	default:
		return nil, ErrUnknownFramework
	}
	return append([]domain.AssessmentQuestion(nil), src...), nil
}

// validateAnswers exige respuesta 1..5 para cada pregunta; IDs desconocidos se ignoran.
func validateAnswers(questions []domain.AssessmentQuestion, answers map[string]int) error {
	var missing []string
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			missing = append(missing, q.ID)
			continue
		}
		if a < minAnswer || a > maxAnswer {
			return fmt.Errorf("%w: %s=%d", ErrInvalidAnswer, q.ID, a)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteAssessment, strings.Join(missing, ","))
	}
	return nil
}

// likertScores promedia por rasgo y escala el promedio 1..5 a 0..100.
func likertScores(questions []domain.AssessmentQuestion, answers map[string]int) (map[string]int, error) {
	if err := validateAnswers(questions, answers); err != nil {
		return nil, err
	}
	sums := map[string]int{}
	counts := map[string]int{}
	for _, q := range questions {
		a := answers[q.ID]
		if q.Reverse {
			a = 6 - a
		}
		sums[q.Trait] += a
		counts[q.Trait]++
	}
	scores := make(map[string]int, len(sums))
	for trait, sum := range sums {
		mean := float64(sum) / float64(counts[trait])
		scores[trait] = int(math.Round((mean - 1) / 4 * 100))
	}
	return scores, nil
}

func ScoreBigFive(answers map[string]int) (domain.BigFiveTraits, error) {
	s, err := likertScores(bigFiveQuestions, answers)
	if err != nil {
		return domain.BigFiveTraits{}, err
	}
	return domain.BigFiveTraits{
		Openness:          s["openness"],
		Conscientiousness: s["conscientiousness"],
		Extraversion:      s["extraversion"],
		Agreeableness:     s["agreeableness"],
		Neuroticism:       s["neuroticism"],
	}, nil
}

func ScoreDISC(answers map[string]int) (domain.DISCTraits, error) {
	s, err := likertScores(discQuestions, answers)
	if err != nil {
		return domain.DISCTraits{}, err
	}
	return domain.DISCTraits{
		Dominance:         s["dominance"],
		Influence:         s["influence"],
		Steadiness:        s["steadiness"],
		Conscientiousness: s["conscientiousness"],
	}, nil
}

// ScoreMBTI suma (a-3) por eje, negado para items del primer polo.
// Suma >= 0 da la segunda letra; el eje se escala a 0..100.
func ScoreMBTI(answers map[string]int) (domain.MBTITraits, error) {
	if err := validateAnswers(mbtiQuestions, answers); err != nil {
		return domain.MBTITraits{}, err
	}
	var sums [4]int
	for _, q := range mbtiQuestions {
		axis, ok := domain.ParseMBTIAxis(q.Dimension)
		if !ok {
			continue
		}
		delta := answers[q.ID] - 3
		if q.Direction == directionFirst {
			delta = -delta
		}
		sums[axis] += delta
	}

	var traits domain.MBTITraits
	for _, axis := range domain.MBTIAxes {
		v := math.Round((float64(sums[axis])/mbtiAxisMaxSum + 1) * 50)
		traits.SetAxis(axis, v)
	}
	traits.Type = domain.TypeFromAxes(
		traits.IntroversionExtraversion,
		traits.IntuitionSensing,
		traits.ThinkingFeeling,
		traits.JudgingPerceiving,
	)
	return traits, nil
}

// Submit puntua las respuestas y guarda el resultado sin tocar el perfil.
func (s *AssessmentService) Submit(ctx context.Context, employeeID string, framework domain.Framework, answers map[string]int) (domain.AssessmentResult, error) {
	if s == nil || s.assessments == nil || s.employees == nil {
		return domain.AssessmentResult{}, ErrAssessmentNotConfigured
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return domain.AssessmentResult{}, ErrInvalidEmployee
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("load employee %s: %w", employeeID, err)
	}

	result := domain.AssessmentResult{
		ID:          s.newID(),
		EmployeeID:  employeeID,
		Framework:   framework,
		CompletedAt: s.now().UTC(),
	}
	switch framework {
	case domain.FrameworkBigFive:
		bf, err := ScoreBigFive(answers)
		if err != nil {
			return domain.AssessmentResult{}, err
		}
		result.BigFive = &bf
	case domain.FrameworkDISC:
		disc, err := ScoreDISC(answers)
		if err != nil {
			return domain.AssessmentResult{}, err
		}
		result.DISC = &disc
	case domain.FrameworkMBTI:
		mbti, err := ScoreMBTI(answers)
		if err != nil {
			return domain.AssessmentResult{}, err
		}
		result.MBTI = &mbti
	default:
		return domain.AssessmentResult{}, ErrUnknownFramework
	}

	if err := s.assessments.Create(ctx, result); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("store assessment: %w", err)
	}
	s.logger.Info("assessment stored",
		zap.String("assessment_id", result.ID),
		zap.String("employee_id", employeeID),
		zap.String("framework", string(framework)),
	)
	return result, nil
}

// MergeIntoProfile reemplaza el framework evaluado en el perfil y actualiza LastAssessed.
// Los matches cacheados del empleado se invalidan.
func (s *AssessmentService) MergeIntoProfile(ctx context.Context, assessmentID string) (domain.EmployeeProfile, error) {
	if s == nil || s.assessments == nil || s.employees == nil {
		return domain.EmployeeProfile{}, ErrAssessmentNotConfigured
	}
	result, err := s.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return domain.EmployeeProfile{}, fmt.Errorf("load assessment %s: %w", assessmentID, err)
	}
	employee, err := s.employees.GetByID(ctx, result.EmployeeID)
	if err != nil {
		return domain.EmployeeProfile{}, fmt.Errorf("load employee %s: %w", result.EmployeeID, err)
	}

	switch {
	case result.BigFive != nil:
		employee.Personality.BigFive = result.BigFive.Clamp()
	case result.DISC != nil:
		employee.Personality.DISC = result.DISC.Clamp()
	case result.MBTI != nil:
		employee.Personality.MBTI = *result.MBTI
	default:
		return domain.EmployeeProfile{}, ErrUnknownFramework
	}
	now := s.now().UTC()
	employee.Personality.LastAssessed = now

	if err := s.employees.Upsert(ctx, employee); err != nil {
		return domain.EmployeeProfile{}, fmt.Errorf("update employee %s: %w", employee.ID, err)
	}
	if err := s.assessments.MarkMerged(ctx, result.ID, now); err != nil {
		return domain.EmployeeProfile{}, fmt.Errorf("mark assessment merged: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateEmployee(ctx, employee.ID); err != nil {
			s.logger.Warn("match cache invalidation failed", zap.Error(err), zap.String("employee_id", employee.ID))
		}
	}
	s.logger.Info("assessment merged",
		zap.String("assessment_id", result.ID),
		zap.String("employee_id", employee.ID),
		zap.String("framework", string(result.Framework)),
	)
	return employee, nil
}
