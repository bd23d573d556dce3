package service

import (
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type ProjectService struct {
	ProjectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{ProjectRepo: projectRepo}
}

func (s *ProjectService) ListProjects() ([]model.Project, error) {
	return s.ProjectRepo.ListProjects()
}

// CreateProject 管理端新建实战项目
func (s *ProjectService) CreateProject(project *model.Project) error {
	return s.ProjectRepo.CreateProject(project)
}

// StartProject 为用户启动一个项目实例
func (s *ProjectService) StartProject(userID, projectID uint) (*model.ProjectInstance, error) {
	if _, err := s.ProjectRepo.FindProjectByID(projectID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}

	instance := &model.ProjectInstance{
		ProjectID: projectID,
		UserID:    userID,
		Status:    model.ProjectInProgress,
		StartedAt: time.Now(),
	}
	if err := s.ProjectRepo.CreateInstance(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *ProjectService) ListInstances(userID uint) ([]model.ProjectInstance, error) {
	return s.ProjectRepo.ListInstancesByUser(userID)
}

// UpdateInstanceStatus 推进项目状态，完成时记录完成时间
func (s *ProjectService) UpdateInstanceStatus(userID, instanceID uint, status model.ProjectStatus, repoURL string) (*model.ProjectInstance, error) {
	instance, err := s.ProjectRepo.FindInstanceByID(instanceID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if instance.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	switch status {
	case model.ProjectInProgress, model.ProjectSubmitted, model.ProjectCompleted:
	default:
		return nil, util.ErrInvalidStatus
	}

	instance.Status = status
	if repoURL != "" {
		instance.RepoURL = repoURL
	}
	if status == model.ProjectCompleted && instance.CompletedAt == nil {
		now := time.Now()
		instance.CompletedAt = &now
	}

	if err := s.ProjectRepo.UpdateInstance(instance); err != nil {
		return nil, err
	}
	return instance, nil
}
