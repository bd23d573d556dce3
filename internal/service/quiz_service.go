package service

import (
	"context"
	"math"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

const (
	// attemptListDefaultLimit 未指定时返回的作答历史条数
	attemptListDefaultLimit = 50
	// attemptListMaxLimit 作答历史单次查询上限，超出按上限截断
	attemptListMaxLimit = 100
)

type QuizService struct {
	QuizRepo           *repository.QuizRepository
	AttemptRepo        *repository.AttemptRepository
	AchievementService *AchievementService
	API                *RoadmapAPIClient
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	attemptRepo *repository.AttemptRepository,
	achievementService *AchievementService,
	api *RoadmapAPIClient,
) *QuizService {
	return &QuizService{
		QuizRepo:           quizRepo,
		AttemptRepo:        attemptRepo,
		AchievementService: achievementService,
		API:                api,
	}
}

// QuestionResult 单题判定
type QuestionResult struct {
	QuestionID    uint   `json:"questionId"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// QuizResult 一次作答的评分结果
type QuizResult struct {
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Passed     bool             `json:"passed"`
	Questions  []QuestionResult `json:"questions"`
}

// scoreQuiz 本地评分：所选选项与标准答案做精确字符串比较。
// 空题库和未答全的提交在评分前被拒绝。
func scoreQuiz(questions []model.Question, answers map[uint]string) (*QuizResult, error) {
	if len(questions) == 0 {
		return nil, util.ErrQuizNoQuestions
	}
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return nil, util.ErrUnansweredQuestions
		}
	}

	result := &QuizResult{
		Total:     len(questions),
		Questions: make([]QuestionResult, 0, len(questions)),
	}
	for _, q := range questions {
		selected := answers[q.ID]
		correct := selected == q.CorrectAnswer
		if correct {
			result.Correct++
		}
		result.Questions = append(result.Questions, QuestionResult{
			QuestionID:    q.ID,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
		})
	}

	result.Percentage = int(math.Round(100 * float64(result.Correct) / float64(result.Total)))
	return result, nil
}

// passedQuiz 及格与否是针对当前及格线的派生判定，不落库，
// 避免日后调整及格线时出现新旧结论不一致
func passedQuiz(percentage, passingScore int) bool {
	if passingScore <= 0 {
		passingScore = model.DefaultPassingScore
	}
	return percentage >= passingScore
}

// LearnerQuestion 学员视角的题目，不下发标准答案
type LearnerQuestion struct {
	ID       uint     `json:"id"`
	Prompt   string   `json:"prompt"`
	Position int      `json:"position"`
	Choices  []string `json:"choices"`
}

// LearnerQuiz 学员视角的测验
type LearnerQuiz struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	PassingScore int               `json:"passingScore"`
	Questions    []LearnerQuestion `json:"questions"`
}

func toLearnerQuiz(quiz *model.Quiz) *LearnerQuiz {
	out := &LearnerQuiz{
		ID:           quiz.ID,
		Title:        quiz.Title,
		Description:  quiz.Description,
		PassingScore: quiz.PassingScore,
		Questions:    make([]LearnerQuestion, 0, len(quiz.Questions)),
	}
	if out.PassingScore <= 0 {
		out.PassingScore = model.DefaultPassingScore
	}
	for _, q := range quiz.Questions {
		choices := make([]string, 0, len(q.Choices))
		for _, c := range q.Choices {
			choices = append(choices, c.Text)
		}
		out.Questions = append(out.Questions, LearnerQuestion{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Position: q.Position,
			Choices:  choices,
		})
	}
	return out
}

// ListQuizzes 测验目录：本地库优先，其次第三方API，最后回退内置示例数据。
// roadmapID 非0时只返回该路线下的测验
func (s *QuizService) ListQuizzes(ctx context.Context, roadmapID uint) (*QuizCatalog, error) {
	var quizzes []model.Quiz
	var err error
	if roadmapID > 0 {
		quizzes, err = s.QuizRepo.ListByRoadmap(roadmapID)
	} else {
		quizzes, err = s.QuizRepo.ListPublished()
	}
	if err == nil && len(quizzes) > 0 {
		return &QuizCatalog{Source: SourceLocal, Quizzes: quizzes}, nil
	}

	if s.API != nil {
		apiQuizzes, cached, apiErr := s.API.FetchQuizzes(ctx)
		if apiErr == nil {
			source := SourceAPI
			if cached {
				source = SourceCache
			}
			return &QuizCatalog{Source: source, Quizzes: filterQuizzes(apiQuizzes, roadmapID)}, nil
		}
	}

	return &QuizCatalog{Source: SourceSample, Quizzes: filterQuizzes(SampleQuizzes(), roadmapID)}, nil
}

func filterQuizzes(quizzes []model.Quiz, roadmapID uint) []model.Quiz {
	if roadmapID == 0 {
		return quizzes
	}
	filtered := make([]model.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.RoadmapID != nil && *q.RoadmapID == roadmapID {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// GetQuiz 学员取题。本地未命中时走API，再回退示例数据
func (s *QuizService) GetQuiz(ctx context.Context, id uint) (*LearnerQuiz, error) {
	quiz, err := s.loadQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, util.ErrQuizNoQuestions
	}
	return toLearnerQuiz(quiz), nil
}

func (s *QuizService) loadQuiz(ctx context.Context, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err == nil {
		return quiz, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if s.API != nil {
		apiQuiz, _, apiErr := s.API.FetchQuiz(ctx, id)
		if apiErr == nil {
			return apiQuiz, nil
		}
	}

	for _, sample := range SampleQuizzes() {
		if sample.ID == id {
			return &sample, nil
		}
	}
	return nil, util.ErrQuizNotFound
}

// StartAttempt 开始作答。未提交的旧作答直接续用（可续答，直到提交为止）
func (s *QuizService) StartAttempt(ctx context.Context, userID, quizID uint) (*model.QuizAttempt, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, util.ErrQuizNoQuestions
	}

	if existing, err := s.AttemptRepo.FindUnfinished(userID, quizID); err == nil {
		return existing, nil
	}

	attempt := &model.QuizAttempt{
		UserID:    userID,
		QuizID:    quizID,
		Answers:   map[uint]string{},
		Total:     len(quiz.Questions),
		StartedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SaveAnswers 记录作答中的选择，提交后的作答不可再改
func (s *QuizService) SaveAnswers(userID, attemptID uint, answers map[uint]string) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if attempt.Finished() {
		return nil, util.ErrAttemptFinalized
	}

	if attempt.Answers == nil {
		attempt.Answers = map[uint]string{}
	}
	for questionID, selected := range answers {
		attempt.Answers[questionID] = selected
	}

	if err := s.AttemptRepo.Update(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAttempt 校验、评分并定稿。FinishedAt 只写入这一次
func (s *QuizService) SubmitAttempt(ctx context.Context, userID, attemptID uint, answers map[uint]string) (*QuizResult, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if attempt.Finished() {
		return nil, util.ErrAttemptFinalized
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	if attempt.Answers == nil {
		attempt.Answers = map[uint]string{}
	}
	for questionID, selected := range answers {
		attempt.Answers[questionID] = selected
	}

	result, err := scoreQuiz(quiz.Questions, attempt.Answers)
	if err != nil {
		return nil, err
	}
	result.Passed = passedQuiz(result.Percentage, quiz.PassingScore)

	now := time.Now()
	attempt.Score = result.Correct
	attempt.Total = result.Total
	attempt.Percentage = result.Percentage
	attempt.FinishedAt = &now

	if err := s.AttemptRepo.Update(attempt); err != nil {
		return nil, err
	}

	if s.AchievementService != nil {
		s.AchievementService.AwardByCode(userID, "first_quiz")
		if result.Passed {
			s.AchievementService.AwardByCode(userID, "first_pass")
		}
		if result.Percentage == 100 {
			s.AchievementService.AwardByCode(userID, "perfect_score")
		}
	}

	return result, nil
}

func (s *QuizService) GetAttempt(userID, attemptID uint) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return attempt, nil
}

// clampAttemptLimit 未指定时给默认值，超出上限时截断到上限
func clampAttemptLimit(limit int) int {
	if limit <= 0 {
		return attemptListDefaultLimit
	}
	if limit > attemptListMaxLimit {
		return attemptListMaxLimit
	}
	return limit
}

func (s *QuizService) ListAttempts(userID uint, limit int) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.ListByUser(userID, clampAttemptLimit(limit))
}
