package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "belajarku_backend/internals/features/courses/course/model"
)

func strPtr(s string) *string { return &s }

func TestCourseCreateRequestNormalize(t *testing.T) {
	req := CourseCreateRequest{
		CourseTitle: "  Belajar Go  ",
		CourseDesc:  strPtr("   "),
		CourseLevel: strPtr(" intermediate "),
	}
	req.Normalize()

	assert.Equal(t, "Belajar Go", req.CourseTitle)
	assert.Nil(t, req.CourseDesc, "string kosong dinormalkan ke nil")
	assert.Equal(t, "intermediate", *req.CourseLevel)
}

func TestCourseCreateRequestToModelDefaults(t *testing.T) {
	createdBy := uuid.New()
	req := CourseCreateRequest{
		CourseCategoryID: uuid.New(),
		CourseTitle:      "Belajar Go",
	}

	m := req.ToModel(createdBy)

	assert.Equal(t, createdBy, m.CourseCreatedBy)
	assert.Equal(t, model.CourseStatusDraft, m.CourseStatus, "course baru selalu DRAFT")
	assert.Equal(t, model.CourseLevelBeginner, m.CourseLevel)
	assert.Equal(t, int64(0), m.CoursePrice, "tanpa harga = gratis")
}

func TestCourseUpdateRequestPartialApply(t *testing.T) {
	m := &model.CourseModel{
		CourseTitle: "Judul Lama",
		CourseLevel: model.CourseLevelBeginner,
		CoursePrice: 150000,
	}

	price := int64(99000)
	req := CourseUpdateRequest{
		CourseTitle: strPtr("Judul Baru"),
		CoursePrice: &price,
	}
	req.Normalize()
	req.ApplyToModel(m)

	assert.Equal(t, "Judul Baru", m.CourseTitle)
	assert.Equal(t, int64(99000), m.CoursePrice)
	assert.Equal(t, model.CourseLevelBeginner, m.CourseLevel, "field nil tidak menyentuh nilai lama")
}

func TestIsValidCourseStatusAndLevel(t *testing.T) {
	assert.True(t, model.IsValidCourseStatus(model.CourseStatusPublished))
	assert.False(t, model.IsValidCourseStatus("published"), "status case-sensitive")
	assert.False(t, model.IsValidCourseStatus(""))

	assert.True(t, model.IsValidCourseLevel(model.CourseLevelAdvanced))
	assert.False(t, model.IsValidCourseLevel("expert"))
}
