package service

import (
	"skillpath_backend/internal/model"
)

// 内置示例目录。第三方API和本地数据都不可用时兜底，
// 保证演示环境始终有可浏览的内容。

func sampleResource(id, sectionID uint, title, url string, typ model.ResourceType, position int) model.Resource {
	r := model.Resource{
		SectionID: sectionID,
		Title:     title,
		URL:       url,
		Type:      typ,
		Position:  position,
	}
	r.ID = id
	return r
}

func SampleRoadmaps() []model.Roadmap {
	frontend := model.Roadmap{
		Title:          "Frontend Development",
		Description:    "从HTML/CSS基础到现代前端框架的完整路线",
		Difficulty:     model.Beginner,
		EstimatedHours: 60,
		Published:      true,
	}
	frontend.ID = 1

	basics := model.Section{
		RoadmapID:   1,
		Title:       "Web 基础",
		Description: "HTML、CSS与JavaScript入门",
		Difficulty:  model.Beginner,
		Position:    0,
	}
	basics.ID = 1
	basics.Resources = []model.Resource{
		sampleResource(1, 1, "HTML 入门", "https://developer.mozilla.org/docs/Learn/HTML", model.Article, 0),
		sampleResource(2, 1, "CSS 布局详解", "https://developer.mozilla.org/docs/Learn/CSS", model.Article, 1),
		sampleResource(3, 1, "JavaScript 基础视频课", "https://example.com/videos/js-basics", model.Video, 2),
	}

	frameworks := model.Section{
		RoadmapID:   1,
		Title:       "现代前端框架",
		Description: "组件化开发与状态管理",
		Difficulty:  model.Intermediate,
		Position:    1,
	}
	frameworks.ID = 2
	frameworks.Resources = []model.Resource{
		sampleResource(4, 2, "React 官方教程", "https://react.dev/learn", model.Article, 0),
		sampleResource(5, 2, "单页应用实战", "https://example.com/videos/spa-in-action", model.Video, 1),
	}

	frontend.Sections = []model.Section{basics, frameworks}

	backend := model.Roadmap{
		Title:          "Go Backend Development",
		Description:    "用Go构建可上线的后端服务",
		Difficulty:     model.Intermediate,
		EstimatedHours: 80,
		Published:      true,
	}
	backend.ID = 2

	goBasics := model.Section{
		RoadmapID:   2,
		Title:       "Go 语言基础",
		Description: "语法、并发与标准库",
		Difficulty:  model.Beginner,
		Position:    0,
	}
	goBasics.ID = 3
	goBasics.Resources = []model.Resource{
		sampleResource(6, 3, "A Tour of Go", "https://go.dev/tour", model.Article, 0),
		sampleResource(7, 3, "Go 并发模式", "https://example.com/videos/go-concurrency", model.Video, 1),
	}
	backend.Sections = []model.Section{goBasics}

	return []model.Roadmap{frontend, backend}
}

func sampleQuestion(id, quizID uint, prompt string, options []string, answer string, position int) model.Question {
	q := model.Question{
		QuizID:        quizID,
		Prompt:        prompt,
		CorrectAnswer: answer,
		Position:      position,
	}
	q.ID = id
	for i, opt := range options {
		c := model.QuestionChoice{QuestionID: id, Text: opt, Position: i}
		c.ID = id*10 + uint(i)
		q.Choices = append(q.Choices, c)
	}
	return q
}

func SampleQuizzes() []model.Quiz {
	roadmapID := uint(1)
	quiz := model.Quiz{
		RoadmapID:    &roadmapID,
		Title:        "Web 基础测验",
		Description:  "检验HTML/CSS/JS基础掌握情况",
		PassingScore: model.DefaultPassingScore,
		Published:    true,
	}
	quiz.ID = 1
	quiz.Questions = []model.Question{
		sampleQuestion(1, 1, "HTML中表示超链接的标签是？",
			[]string{"<a>", "<link>", "<href>", "<url>"}, "<a>", 0),
		sampleQuestion(2, 1, "CSS中设置文字颜色的属性是？",
			[]string{"font-color", "text-color", "color", "foreground"}, "color", 1),
		sampleQuestion(3, 1, "JavaScript中声明常量的关键字是？",
			[]string{"var", "let", "const", "static"}, "const", 2),
		sampleQuestion(4, 1, "下列哪个不是JavaScript的基本类型？",
			[]string{"string", "boolean", "number", "class"}, "class", 3),
	}
	return []model.Quiz{quiz}
}
