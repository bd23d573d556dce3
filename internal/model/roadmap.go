package model

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Roadmap 学习路线，由有序章节组成
// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Difficulty     Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	EstimatedHours int        `gorm:"default:0" json:"estimatedHours"`
	Published      bool       `gorm:"default:true" json:"published"`
	Sections       []Section  `gorm:"foreignKey:RoadmapID" json:"sections,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// Section 路线内的主题章节
// swagger:model Section
type Section struct {
	BaseModel
	RoadmapID   uint       `gorm:"index;not null" json:"roadmapId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	Position    int        `gorm:"default:0" json:"position"`
	Resources   []Resource `gorm:"foreignKey:SectionID" json:"resources,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}
