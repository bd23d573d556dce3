package service

import (
	"testing"

	"skillpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, progressPercentage(0, 5))
	assert.Equal(t, 60, progressPercentage(3, 5))
	assert.Equal(t, 100, progressPercentage(5, 5))

	// 空路线永远是0，不会除零
	assert.Equal(t, 0, progressPercentage(0, 0))
	assert.Equal(t, 0, progressPercentage(3, 0))

	// 完成数超过总数时封顶100（资源被删后仍可能出现）
	assert.Equal(t, 100, progressPercentage(7, 5))

	// 四舍五入
	assert.Equal(t, 33, progressPercentage(1, 3))
	assert.Equal(t, 67, progressPercentage(2, 3))
}

func TestApplyCompletionAddsResource(t *testing.T) {
	completed, pct := applyCompletion([]uint{1, 2}, 3, 5)
	assert.Equal(t, []uint{1, 2, 3}, completed)
	assert.Equal(t, 60, pct)
}

func TestApplyCompletionIsIdempotent(t *testing.T) {
	completed, pct := applyCompletion([]uint{1, 2, 3}, 2, 5)
	assert.Equal(t, []uint{1, 2, 3}, completed)
	assert.Equal(t, 60, pct)

	// 重复标记任意次结果不变
	again, pct2 := applyCompletion(completed, 2, 5)
	assert.Equal(t, completed, again)
	assert.Equal(t, pct, pct2)
}

func TestApplyCompletionNeverDecreases(t *testing.T) {
	completed := []uint{}
	last := 0
	for _, id := range []uint{4, 1, 4, 2, 1, 3} {
		var pct int
		completed, pct = applyCompletion(completed, id, 4)
		assert.GreaterOrEqual(t, pct, last)
		last = pct
	}
	assert.Equal(t, 100, last)
	assert.Len(t, completed, 4)
}

func TestApplyCompletionFromEmpty(t *testing.T) {
	completed, pct := applyCompletion(nil, 9, 4)
	assert.Equal(t, []uint{9}, completed)
	assert.Equal(t, 25, pct)
}

func makeRoadmapWithResources(roadmapID uint, resourceIDs ...uint) *model.Roadmap {
	roadmap := &model.Roadmap{}
	roadmap.ID = roadmapID
	section := model.Section{RoadmapID: roadmapID}
	section.ID = roadmapID * 100
	for _, id := range resourceIDs {
		resource := model.Resource{SectionID: section.ID, Type: model.Article}
		resource.ID = id
		section.Resources = append(section.Resources, resource)
	}
	roadmap.Sections = []model.Section{section}
	return roadmap
}

func TestRoadmapHasResource(t *testing.T) {
	golang := makeRoadmapWithResources(1, 11, 12, 13)

	assert.True(t, roadmapHasResource(golang, 11))
	assert.True(t, roadmapHasResource(golang, 13))
	assert.False(t, roadmapHasResource(golang, 99))
}

func TestRoadmapHasResourceRejectsForeignRoadmap(t *testing.T) {
	golang := makeRoadmapWithResources(1, 11, 12)
	python := makeRoadmapWithResources(2, 21, 22)

	// 别的路线的资源ID不能混进这条路线的进度里
	assert.False(t, roadmapHasResource(golang, 21))
	assert.False(t, roadmapHasResource(golang, 22))
	assert.True(t, roadmapHasResource(python, 21))
}

func TestRoadmapHasResourceEmptyRoadmap(t *testing.T) {
	empty := &model.Roadmap{}
	empty.ID = 3

	assert.False(t, roadmapHasResource(empty, 11))
}
