package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrUsernameTaken       = errors.New("该用户名已被占用")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidUsername     = errors.New("用户名须为3-30位字母、数字、下划线或连字符")
	ErrWeakPassword        = errors.New("密码至少8位，且包含大写字母、小写字母和数字")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrRoadmapNotFound     = errors.New("roadmap not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptFinalized    = errors.New("attempt already submitted")
	ErrQuizNoQuestions     = errors.New("no questions available")
	ErrUnansweredQuestions = errors.New("answer all questions before submitting")
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidStatus       = errors.New("invalid project status")
	ErrSessionNotFound     = errors.New("chat session not found")
	ErrExternalAPI         = errors.New("external roadmap API unavailable")
)
