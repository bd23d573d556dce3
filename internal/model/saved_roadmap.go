package model

// SavedRoadmap 用户收藏的路线，(user, roadmap) 唯一
// swagger:model SavedRoadmap
type SavedRoadmap struct {
	BaseModel
	UserID    uint    `gorm:"index:idx_user_saved,unique;not null" json:"userId"`
	RoadmapID uint    `gorm:"index:idx_user_saved,unique;not null" json:"roadmapId"`
	Roadmap   Roadmap `gorm:"foreignKey:RoadmapID" json:"roadmap,omitempty"`
}

func (SavedRoadmap) TableName() string {
	return "saved_roadmaps"
}
