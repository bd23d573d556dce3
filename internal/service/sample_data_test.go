package service

import (
	"testing"

	"skillpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSampleRoadmapsAreWellFormed(t *testing.T) {
	roadmaps := SampleRoadmaps()
	assert.NotEmpty(t, roadmaps)

	seenRoadmaps := map[uint]bool{}
	seenResources := map[uint]bool{}
	for _, roadmap := range roadmaps {
		assert.False(t, seenRoadmaps[roadmap.ID], "duplicate roadmap id %d", roadmap.ID)
		seenRoadmaps[roadmap.ID] = true
		assert.NotEmpty(t, roadmap.Title)
		assert.True(t, roadmap.Published)

		for i, section := range roadmap.Sections {
			assert.Equal(t, roadmap.ID, section.RoadmapID)
			assert.Equal(t, i, section.Position)
			for j, resource := range section.Resources {
				assert.False(t, seenResources[resource.ID], "duplicate resource id %d", resource.ID)
				seenResources[resource.ID] = true
				assert.Equal(t, section.ID, resource.SectionID)
				assert.Equal(t, j, resource.Position)
				assert.NotEmpty(t, resource.URL)
				assert.Contains(t, []model.ResourceType{model.Video, model.Article}, resource.Type)
			}
		}
	}
}

func TestSampleQuizzesAreScorable(t *testing.T) {
	for _, quiz := range SampleQuizzes() {
		assert.NotEmpty(t, quiz.Questions, "quiz %d has no questions", quiz.ID)
		assert.Greater(t, quiz.PassingScore, 0)

		for _, q := range quiz.Questions {
			assert.Equal(t, quiz.ID, q.QuizID)
			assert.NotEmpty(t, q.Choices)

			// 标准答案必须是选项之一
			found := false
			for _, c := range q.Choices {
				if c.Text == q.CorrectAnswer {
					found = true
					break
				}
			}
			assert.True(t, found, "question %d answer not among choices", q.ID)
		}
	}
}
