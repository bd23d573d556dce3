package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService 管理端内容维护：路线、章节、资源、测验的创建与修改
type ContentService struct {
	RoadmapRepo  *repository.RoadmapRepository
	ResourceRepo *repository.ResourceRepository
	QuizRepo     *repository.QuizRepository
	Storage      *StorageService
}

func NewContentService(
	roadmapRepo *repository.RoadmapRepository,
	resourceRepo *repository.ResourceRepository,
	quizRepo *repository.QuizRepository,
	storage *StorageService,
) *ContentService {
	return &ContentService{
		RoadmapRepo:  roadmapRepo,
		ResourceRepo: resourceRepo,
		QuizRepo:     quizRepo,
		Storage:      storage,
	}
}

type RoadmapRequest struct {
	Title          string           `json:"title" binding:"required"`
	Description    string           `json:"description"`
	Difficulty     model.Difficulty `json:"difficulty" binding:"required"`
	EstimatedHours int              `json:"estimatedHours"`
	Published      *bool            `json:"published"`
}

func (s *ContentService) CreateRoadmap(req RoadmapRequest) (*model.Roadmap, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("roadmap title must not be empty")
	}
	if !util.ValidDifficulty(req.Difficulty) {
		return nil, fmt.Errorf("invalid difficulty: %s", req.Difficulty)
	}

	roadmap := &model.Roadmap{
		Title:          req.Title,
		Description:    req.Description,
		Difficulty:     req.Difficulty,
		EstimatedHours: req.EstimatedHours,
		Published:      true,
	}
	if req.Published != nil {
		roadmap.Published = *req.Published
	}
	if err := s.RoadmapRepo.Create(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *ContentService) UpdateRoadmap(id uint, req RoadmapRequest) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("roadmap title must not be empty")
	}
	if !util.ValidDifficulty(req.Difficulty) {
		return nil, fmt.Errorf("invalid difficulty: %s", req.Difficulty)
	}

	roadmap.Title = req.Title
	roadmap.Description = req.Description
	roadmap.Difficulty = req.Difficulty
	roadmap.EstimatedHours = req.EstimatedHours
	if req.Published != nil {
		roadmap.Published = *req.Published
	}
	if err := s.RoadmapRepo.Update(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *ContentService) DeleteRoadmap(id uint) error {
	return s.RoadmapRepo.Delete(id)
}

type SectionRequest struct {
	RoadmapID   uint             `json:"roadmapId" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Difficulty  model.Difficulty `json:"difficulty"`
	Position    int              `json:"position"`
}

func (s *ContentService) CreateSection(req SectionRequest) (*model.Section, error) {
	if _, err := s.RoadmapRepo.FindByID(req.RoadmapID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	section := &model.Section{
		RoadmapID:   req.RoadmapID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Position:    req.Position,
	}
	if section.Difficulty == "" {
		section.Difficulty = model.Beginner
	}
	if err := s.RoadmapRepo.CreateSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

type ResourceRequest struct {
	SectionID uint               `json:"sectionId" binding:"required"`
	Title     string             `json:"title" binding:"required"`
	URL       string             `json:"url" binding:"required"`
	Type      model.ResourceType `json:"type" binding:"required,oneof=video article"`
	Position  int                `json:"position"`
	Duration  float64            `json:"duration"`
}

func (s *ContentService) CreateResource(req ResourceRequest) (*model.Resource, error) {
	if _, err := s.RoadmapRepo.FindSectionByID(req.SectionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	resource := &model.Resource{
		SectionID: req.SectionID,
		Title:     req.Title,
		URL:       req.URL,
		Type:      req.Type,
		Position:  req.Position,
		Duration:  req.Duration,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// UploadResourceFile 上传资源文件并返回可访问URL。
// 视频先落临时文件做ffprobe，取到的时长/格式跟随资源保存。
func (s *ContentService) UploadResourceFile(ctx context.Context, file *multipart.FileHeader, resourceType model.ResourceType) (string, *util.VideoInfo, error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectName := fmt.Sprintf("resources/%s%s", uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")

	if resourceType != model.Video {
		fileURL, err := s.Storage.Upload(ctx, objectName, src, file.Size, contentType)
		return fileURL, nil, err
	}

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return "", nil, err
	}

	var info *util.VideoInfo
	if probed, err := util.ProbeVideo(tmp.Name()); err == nil {
		info = probed
	} else {
		logger.Log.Warn("video probe failed", zap.Error(err))
	}

	fileURL, err := s.Storage.UploadFile(ctx, objectName, tmp.Name(), contentType)
	if err != nil {
		return "", nil, err
	}
	return fileURL, info, nil
}

type QuizRequest struct {
	RoadmapID    *uint  `json:"roadmapId"`
	SectionID    *uint  `json:"sectionId"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	PassingScore int    `json:"passingScore"`
	Published    *bool  `json:"published"`
}

func (s *ContentService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		RoadmapID:    req.RoadmapID,
		SectionID:    req.SectionID,
		Title:        req.Title,
		Description:  req.Description,
		PassingScore: req.PassingScore,
		Published:    true,
	}
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = model.DefaultPassingScore
	}
	if req.Published != nil {
		quiz.Published = *req.Published
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

type QuestionRequest struct {
	QuizID        uint     `json:"quizId" binding:"required"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Position      int      `json:"position"`
}

// CreateQuestion 新建题目，标准答案必须是选项之一
func (s *ContentService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(req.QuizID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	found := false
	for _, opt := range req.Options {
		if opt == req.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("correct answer must be one of the options")
	}

	question := &model.Question{
		QuizID:        req.QuizID,
		Prompt:        req.Prompt,
		CorrectAnswer: req.CorrectAnswer,
		Position:      req.Position,
	}
	for i, opt := range req.Options {
		question.Choices = append(question.Choices, model.QuestionChoice{
			Text:     opt,
			Position: i,
		})
	}
	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) UpdateSection(id uint, req SectionRequest) (*model.Section, error) {
	section, err := s.RoadmapRepo.FindSectionByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	section.Title = req.Title
	section.Description = req.Description
	if req.Difficulty != "" {
		section.Difficulty = req.Difficulty
	}
	section.Position = req.Position
	if err := s.RoadmapRepo.UpdateSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *ContentService) DeleteSection(id uint) error {
	return s.RoadmapRepo.DeleteSection(id)
}

func (s *ContentService) UpdateResource(id uint, req ResourceRequest) (*model.Resource, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}

	resource.Title = req.Title
	resource.URL = req.URL
	resource.Type = req.Type
	resource.Position = req.Position
	resource.Duration = req.Duration
	if err := s.ResourceRepo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ContentService) DeleteResource(id uint) error {
	return s.ResourceRepo.Delete(id)
}

func (s *ContentService) UpdateQuiz(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.RoadmapID = req.RoadmapID
	quiz.SectionID = req.SectionID
	if req.PassingScore > 0 {
		quiz.PassingScore = req.PassingScore
	}
	if req.Published != nil {
		quiz.Published = *req.Published
	}
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *ContentService) DeleteQuiz(id uint) error {
	return s.QuizRepo.Delete(id)
}

func (s *ContentService) DeleteQuestion(id uint) error {
	return s.QuizRepo.DeleteQuestion(id)
}
