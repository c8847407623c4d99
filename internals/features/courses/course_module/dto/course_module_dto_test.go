package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "belajarku_backend/internals/features/courses/course_module/model"
	materialModel "belajarku_backend/internals/features/courses/material/model"
)

func TestBuildCurriculum(t *testing.T) {
	modA := model.CourseModuleModel{CourseModuleID: uuid.New(), CourseModuleTitle: "Pengenalan", CourseModulePosition: 0}
	modB := model.CourseModuleModel{CourseModuleID: uuid.New(), CourseModuleTitle: "Lanjutan", CourseModulePosition: 1}

	materials := []materialModel.MaterialModel{
		{MaterialID: uuid.New(), MaterialModuleID: modA.CourseModuleID, MaterialTitle: "Video Intro", MaterialPosition: 0},
		{MaterialID: uuid.New(), MaterialModuleID: modA.CourseModuleID, MaterialTitle: "Slide Intro", MaterialPosition: 1},
		{MaterialID: uuid.New(), MaterialModuleID: modB.CourseModuleID, MaterialTitle: "Studi Kasus", MaterialPosition: 0},
	}

	out := BuildCurriculum([]model.CourseModuleModel{modA, modB}, materials)
	require.Len(t, out, 2)

	assert.Equal(t, "Pengenalan", out[0].CourseModuleTitle)
	require.Len(t, out[0].Materials, 2)
	assert.Equal(t, "Video Intro", out[0].Materials[0].MaterialTitle)
	assert.Equal(t, "Slide Intro", out[0].Materials[1].MaterialTitle)

	require.Len(t, out[1].Materials, 1)
	assert.Equal(t, "Studi Kasus", out[1].Materials[0].MaterialTitle)
}

func TestBuildCurriculumEmptyModule(t *testing.T) {
	mod := model.CourseModuleModel{CourseModuleID: uuid.New(), CourseModuleTitle: "Kosong"}

	out := BuildCurriculum([]model.CourseModuleModel{mod}, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Materials)
}
