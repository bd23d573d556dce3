package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RoadmapAPIClient 第三方路线/测验REST API客户端。
// API key 作为query参数携带；读请求带重试；成功响应在Redis中缓存一个
// 过期窗口，窗口内不再回源。该API没有提交端点，评分始终在本地完成。
type RoadmapAPIClient struct {
	cfg    config.RoadmapAPIConfig
	client *http.Client
	rdb    *redis.Client
}

func NewRoadmapAPIClient(cfg config.RoadmapAPIConfig, rdb *redis.Client) *RoadmapAPIClient {
	return &RoadmapAPIClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		rdb:    rdb,
	}
}

type apiRoadmap struct {
	ID             uint         `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Difficulty     string       `json:"difficulty"`
	EstimatedHours int          `json:"estimatedHours"`
	Sections       []apiSection `json:"sections"`
}

type apiSection struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Difficulty  string        `json:"difficulty"`
	Order       int           `json:"order"`
	Resources   []apiResource `json:"resources"`
}

type apiResource struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Order    int     `json:"order"`
}

type apiQuiz struct {
	ID           uint          `json:"id"`
	RoadmapID    *uint         `json:"roadmapId"`
	SectionID    *uint         `json:"sectionId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	PassingScore int           `json:"passingScore"`
	Questions    []apiQuestion `json:"questions"`
}

// apiQuestion 外部API的题目为扁平选项列表加单个标准答案字符串
type apiQuestion struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Order    int      `json:"order"`
}

// get 发起一次读请求。成功载荷写入缓存；缓存命中时返回 cached=true 且不回源。
// 网络失败按配置重试，耗尽后返回 ErrExternalAPI 供上层回退。
func (c *RoadmapAPIClient) get(ctx context.Context, path string) ([]byte, bool, error) {
	cacheKey := "roadmapapi:" + path

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			return cached, true, nil
		}
	}

	endpoint := fmt.Sprintf("%s%s?key=%s", c.cfg.BaseURL, path, url.QueryEscape(c.cfg.APIKey))

	var lastErr error
	attempts := c.cfg.Retries + 1
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, false, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("roadmap api status %d", resp.StatusCode)
			continue
		}

		var envelope struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			lastErr = err
			continue
		}
		if !envelope.Success {
			lastErr = fmt.Errorf("roadmap api error: %s", envelope.Message)
			continue
		}

		if c.rdb != nil && c.cfg.CacheTTL > 0 {
			if err := c.rdb.Set(ctx, cacheKey, body, c.cfg.CacheTTL).Err(); err != nil {
				logger.Log.Warn("roadmap api cache write failed", zap.Error(err))
			}
		}
		return body, false, nil
	}

	logger.Log.Warn("roadmap api exhausted retries",
		zap.String("path", path), zap.Error(lastErr))
	return nil, false, util.ErrExternalAPI
}

func (c *RoadmapAPIClient) FetchRoadmaps(ctx context.Context) ([]model.Roadmap, bool, error) {
	body, cached, err := c.get(ctx, "/roadmaps")
	if err != nil {
		return nil, false, err
	}
	var payload struct {
		Roadmaps []apiRoadmap `json:"roadmaps"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, err
	}

	roadmaps := make([]model.Roadmap, 0, len(payload.Roadmaps))
	for _, r := range payload.Roadmaps {
		roadmaps = append(roadmaps, convertRoadmap(r))
	}
	return roadmaps, cached, nil
}

func (c *RoadmapAPIClient) FetchRoadmap(ctx context.Context, id uint) (*model.Roadmap, bool, error) {
	body, cached, err := c.get(ctx, fmt.Sprintf("/roadmaps/%d", id))
	if err != nil {
		return nil, false, err
	}
	var payload struct {
		Roadmap apiRoadmap `json:"roadmap"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, err
	}
	roadmap := convertRoadmap(payload.Roadmap)
	return &roadmap, cached, nil
}

func (c *RoadmapAPIClient) FetchQuizzes(ctx context.Context) ([]model.Quiz, bool, error) {
	body, cached, err := c.get(ctx, "/quizzes")
	if err != nil {
		return nil, false, err
	}
	var payload struct {
		Quizzes []apiQuiz `json:"quizzes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, err
	}

	quizzes := make([]model.Quiz, 0, len(payload.Quizzes))
	for _, q := range payload.Quizzes {
		quizzes = append(quizzes, convertQuiz(q))
	}
	return quizzes, cached, nil
}

func (c *RoadmapAPIClient) FetchQuiz(ctx context.Context, id uint) (*model.Quiz, bool, error) {
	body, cached, err := c.get(ctx, fmt.Sprintf("/quizzes/%d", id))
	if err != nil {
		return nil, false, err
	}
	var payload struct {
		Quiz apiQuiz `json:"quiz"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, err
	}
	quiz := convertQuiz(payload.Quiz)
	return &quiz, cached, nil
}

func convertRoadmap(r apiRoadmap) model.Roadmap {
	roadmap := model.Roadmap{
		Title:          r.Title,
		Description:    r.Description,
		Difficulty:     model.Difficulty(r.Difficulty),
		EstimatedHours: r.EstimatedHours,
		Published:      true,
	}
	roadmap.ID = r.ID
	for _, s := range r.Sections {
		section := model.Section{
			RoadmapID:   r.ID,
			Title:       s.Title,
			Description: s.Description,
			Difficulty:  model.Difficulty(s.Difficulty),
			Position:    s.Order,
		}
		section.ID = s.ID
		for _, res := range s.Resources {
			resource := model.Resource{
				SectionID: s.ID,
				Title:     res.Title,
				URL:       res.URL,
				Type:      model.ResourceType(res.Type),
				Duration:  res.Duration,
				Position:  res.Order,
			}
			resource.ID = res.ID
			section.Resources = append(section.Resources, resource)
		}
		roadmap.Sections = append(roadmap.Sections, section)
	}
	return roadmap
}

func convertQuiz(q apiQuiz) model.Quiz {
	quiz := model.Quiz{
		RoadmapID:    q.RoadmapID,
		SectionID:    q.SectionID,
		Title:        q.Title,
		Description:  q.Description,
		PassingScore: q.PassingScore,
		Published:    true,
	}
	quiz.ID = q.ID
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = model.DefaultPassingScore
	}
	for _, aq := range q.Questions {
		question := model.Question{
			QuizID:        q.ID,
			Prompt:        aq.Question,
			CorrectAnswer: aq.Answer,
			Position:      aq.Order,
		}
		question.ID = aq.ID
		for i, opt := range aq.Options {
			choice := model.QuestionChoice{
				QuestionID: aq.ID,
				Text:       opt,
				Position:   i,
			}
			question.Choices = append(question.Choices, choice)
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}
