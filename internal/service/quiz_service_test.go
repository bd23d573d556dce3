package service

import (
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(answers ...string) []model.Question {
	questions := make([]model.Question, 0, len(answers))
	for i, answer := range answers {
		q := model.Question{
			Prompt:        "q",
			CorrectAnswer: answer,
			Position:      i,
		}
		q.ID = uint(i + 1)
		questions = append(questions, q)
	}
	return questions
}

func TestScoreQuizAllCorrect(t *testing.T) {
	questions := makeQuestions("a", "b", "c")
	result, err := scoreQuiz(questions, map[uint]string{1: "a", 2: "b", 3: "c"})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 100, result.Percentage)
}

func TestScoreQuizAllWrong(t *testing.T) {
	questions := makeQuestions("a", "b")
	result, err := scoreQuiz(questions, map[uint]string{1: "x", 2: "y"})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0, result.Percentage)
}

func TestScoreQuizPartial(t *testing.T) {
	// 4题对3题 → 75分，默认及格线70分为通过
	questions := makeQuestions("a", "b", "c", "d")
	result, err := scoreQuiz(questions, map[uint]string{1: "a", 2: "b", 3: "c", 4: "x"})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 75, result.Percentage)
	assert.True(t, passedQuiz(result.Percentage, 0))
	assert.False(t, passedQuiz(result.Percentage, 80))
}

func TestScoreQuizExactMatchOnly(t *testing.T) {
	// 精确字符串比较，大小写和空白都算不同
	questions := makeQuestions("Answer")
	result, err := scoreQuiz(questions, map[uint]string{1: "answer"})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Correct)
}

func TestScoreQuizRejectsUnanswered(t *testing.T) {
	questions := makeQuestions("a", "b", "c")
	_, err := scoreQuiz(questions, map[uint]string{1: "a"})
	assert.ErrorIs(t, err, util.ErrUnansweredQuestions)
}

func TestScoreQuizRejectsEmptyQuiz(t *testing.T) {
	_, err := scoreQuiz(nil, map[uint]string{})
	assert.ErrorIs(t, err, util.ErrQuizNoQuestions)
}

func TestPassedQuizBoundary(t *testing.T) {
	assert.True(t, passedQuiz(70, 70))
	assert.False(t, passedQuiz(69, 70))
	// 及格线未设置时使用默认值
	assert.True(t, passedQuiz(model.DefaultPassingScore, 0))
	assert.False(t, passedQuiz(model.DefaultPassingScore-1, 0))
}

func TestToLearnerQuizStripsAnswers(t *testing.T) {
	quiz := &model.Quiz{
		Title:        "测验",
		PassingScore: 70,
	}
	quiz.ID = 1
	q := model.Question{
		Prompt:        "HTML是什么",
		CorrectAnswer: "标记语言",
		Choices: []model.QuestionChoice{
			{Text: "标记语言", Position: 0},
			{Text: "编程语言", Position: 1},
		},
	}
	q.ID = 11
	quiz.Questions = []model.Question{q}

	out := toLearnerQuiz(quiz)
	assert.Len(t, out.Questions, 1)
	assert.Equal(t, []string{"标记语言", "编程语言"}, out.Questions[0].Choices)
	assert.Equal(t, "HTML是什么", out.Questions[0].Prompt)
}

func TestToLearnerQuizDefaultPassingScore(t *testing.T) {
	quiz := &model.Quiz{Title: "t"}
	out := toLearnerQuiz(quiz)
	assert.Equal(t, model.DefaultPassingScore, out.PassingScore)
}

func TestSampleQuizScoring(t *testing.T) {
	// 内置示例数据自身可评分
	samples := SampleQuizzes()
	assert.NotEmpty(t, samples)

	quiz := samples[0]
	answers := make(map[uint]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers[q.ID] = q.CorrectAnswer
	}
	result, err := scoreQuiz(quiz.Questions, answers)
	assert.NoError(t, err)
	assert.Equal(t, 100, result.Percentage)
	assert.True(t, passedQuiz(result.Percentage, quiz.PassingScore))
}

func TestClampAttemptLimit(t *testing.T) {
	assert.Equal(t, attemptListDefaultLimit, clampAttemptLimit(0))
	assert.Equal(t, attemptListDefaultLimit, clampAttemptLimit(-5))
	assert.Equal(t, 30, clampAttemptLimit(30))
	assert.Equal(t, attemptListMaxLimit, clampAttemptLimit(attemptListMaxLimit))

	// 超出上限按上限截断，而不是退回默认值
	assert.Equal(t, attemptListMaxLimit, clampAttemptLimit(attemptListMaxLimit+1))
	assert.Equal(t, attemptListMaxLimit, clampAttemptLimit(10000))
}
