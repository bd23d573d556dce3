package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string, retries int) *RoadmapAPIClient {
	return NewRoadmapAPIClient(config.RoadmapAPIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Retries: retries,
	}, nil)
}

func TestFetchRoadmapsParsesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roadmaps", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"roadmaps": [{
				"id": 1,
				"title": "Frontend",
				"difficulty": "beginner",
				"sections": [{
					"id": 10,
					"title": "HTML",
					"order": 0,
					"resources": [
						{"id": 100, "title": "Intro", "url": "https://example.com", "type": "article", "order": 0}
					]
				}]
			}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	roadmaps, cached, err := client.FetchRoadmaps(context.Background())
	assert.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, roadmaps, 1)
	assert.Equal(t, "Frontend", roadmaps[0].Title)
	assert.Equal(t, model.Beginner, roadmaps[0].Difficulty)
	assert.Len(t, roadmaps[0].Sections, 1)
	assert.Len(t, roadmaps[0].Sections[0].Resources, 1)
	assert.Equal(t, model.Article, roadmaps[0].Sections[0].Resources[0].Type)
}

func TestFetchQuizConvertsFlatOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quizzes/3", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"quiz": {
				"id": 3,
				"title": "Basics",
				"questions": [
					{"id": 31, "question": "Q1", "options": ["a", "b", "c"], "answer": "b", "order": 0}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	quiz, _, err := client.FetchQuiz(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), quiz.ID)
	// 未指定及格线时取默认值
	assert.Equal(t, model.DefaultPassingScore, quiz.PassingScore)
	assert.Len(t, quiz.Questions, 1)
	assert.Equal(t, "b", quiz.Questions[0].CorrectAnswer)
	assert.Len(t, quiz.Questions[0].Choices, 3)
	assert.Equal(t, "a", quiz.Questions[0].Choices[0].Text)
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"success": true, "roadmaps": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	_, _, err := client.FetchRoadmaps(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestGetExhaustsRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	_, _, err := client.FetchRoadmaps(context.Background())
	assert.ErrorIs(t, err, util.ErrExternalAPI)
	assert.Equal(t, 3, calls)
}

func TestGetRejectsUnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "invalid api key"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	_, _, err := client.FetchRoadmaps(context.Background())
	assert.ErrorIs(t, err, util.ErrExternalAPI)
}
