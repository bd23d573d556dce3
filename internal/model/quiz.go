package model

// DefaultPassingScore 未设置及格线的测验统一采用的及格百分比
const DefaultPassingScore = 70

// Quiz 测验，可挂在路线或章节下
// swagger:model Quiz
type Quiz struct {
	BaseModel
	RoadmapID    *uint      `gorm:"index" json:"roadmapId,omitempty"`
	SectionID    *uint      `gorm:"index" json:"sectionId,omitempty"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	PassingScore int        `gorm:"default:70" json:"passingScore"`
	Published    bool       `gorm:"default:true" json:"published"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question 测验题目。CorrectAnswer 与所选选项做精确字符串比较
// swagger:model Question
type Question struct {
	BaseModel
	QuizID        uint             `gorm:"index;not null" json:"quizId"`
	Prompt        string           `gorm:"type:text;not null" json:"prompt"`
	CorrectAnswer string           `gorm:"size:255;not null" json:"-"`
	Position      int              `gorm:"default:0" json:"position"`
	Choices       []QuestionChoice `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model QuestionChoice
type QuestionChoice struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"size:255;not null" json:"text"`
	Position   int    `gorm:"default:0" json:"position"`
}

func (QuestionChoice) TableName() string {
	return "question_choices"
}
