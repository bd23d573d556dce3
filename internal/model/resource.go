package model

type ResourceType string

const (
	Video   ResourceType = "video"
	Article ResourceType = "article"
)

// Resource 单个学习资源（视频或文章）
// swagger:model Resource
type Resource struct {
	BaseModel
	SectionID uint         `gorm:"index;not null" json:"sectionId"`
	Title     string       `gorm:"size:255;not null" json:"title"`
	URL       string       `gorm:"size:255;not null" json:"url"`
	Type      ResourceType `gorm:"type:enum('video','article');not null" json:"type"`
	Position  int          `gorm:"default:0" json:"position"`
	Duration  float64      `gorm:"column:duration;default:0" json:"duration,omitempty"` // 视频时长（秒）
	Size      int64        `gorm:"column:size;default:0" json:"-"`                      // 上传文件大小（字节）
	Format    string       `gorm:"size:50" json:"-"`                                    // 视频格式
}

func (Resource) TableName() string {
	return "resources"
}
