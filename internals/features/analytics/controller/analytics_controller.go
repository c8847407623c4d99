// internals/features/analytics/controller/analytics_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "belajarku_backend/internals/features/analytics/dto"
	helper "belajarku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

// =========================================================
// DASHBOARD - GET /api/a/analytics/dashboard
// Satu query agregat, bukan loop per tabel di aplikasi.
// =========================================================
func (h *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	var out dto.DashboardResponse

	if err := h.DB.Raw(`SELECT
		(SELECT COUNT(*) FROM users WHERE role = 'student' AND deleted_at IS NULL)                    AS total_students,
		(SELECT COUNT(*) FROM users WHERE role = 'admin' AND deleted_at IS NULL)                      AS total_admins,
		(SELECT COUNT(*) FROM users WHERE is_active AND deleted_at IS NULL)                           AS active_users,
		(SELECT COUNT(*) FROM courses WHERE course_deleted_at IS NULL)                                AS total_courses,
		(SELECT COUNT(*) FROM courses WHERE course_status = 'PUBLISHED' AND course_deleted_at IS NULL) AS published_courses,
		(SELECT COUNT(*) FROM enrollments WHERE enrollment_deleted_at IS NULL)                        AS total_enrollments,
		(SELECT COUNT(*) FROM enrollments WHERE enrollment_status = 'ACTIVE' AND enrollment_deleted_at IS NULL)    AS active_learners,
		(SELECT COUNT(*) FROM enrollments WHERE enrollment_status = 'COMPLETED' AND enrollment_deleted_at IS NULL) AS completions,
		(SELECT COUNT(*) FROM reviews WHERE review_deleted_at IS NULL)                                AS total_reviews,
		(SELECT COALESCE(SUM(payment_amount), 0) FROM payments WHERE payment_status = 'PAID' AND payment_deleted_at IS NULL)    AS total_revenue,
		(SELECT COUNT(*) FROM payments WHERE payment_status = 'PAID' AND payment_deleted_at IS NULL)  AS paid_payments,
		(SELECT COALESCE(SUM(payment_amount), 0) FROM payments WHERE payment_status = 'PENDING' AND payment_deleted_at IS NULL) AS pending_revenue`).
		Scan(&out).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	return helper.JsonOK(c, "Statistik platform", out)
}

// =========================================================
// PER-COURSE - GET /api/a/analytics/courses
// =========================================================
func (h *AnalyticsController) CourseStats(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := h.DB.Table("courses").
		Where("course_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []dto.CourseStatRow
	if err := h.DB.Raw(`SELECT
		c.course_id, c.course_title, c.course_status, c.course_price,
		COUNT(e.enrollment_id)                                               AS enrollment_count,
		COUNT(e.enrollment_id) FILTER (WHERE e.enrollment_status = 'COMPLETED') AS completion_count,
		AVG(e.enrollment_progress_percent)                                   AS avg_progress,
		(SELECT ROUND(AVG(r.review_rating)::numeric, 2) FROM reviews r
			WHERE r.review_course_id = c.course_id AND r.review_deleted_at IS NULL) AS avg_rating,
		(SELECT COUNT(*) FROM reviews r
			WHERE r.review_course_id = c.course_id AND r.review_deleted_at IS NULL) AS review_count,
		(SELECT COALESCE(SUM(p.payment_amount), 0) FROM payments p
			WHERE p.payment_course_id = c.course_id AND p.payment_status = 'PAID'
			  AND p.payment_deleted_at IS NULL)                              AS revenue
	FROM courses c
	LEFT JOIN enrollments e
		ON e.enrollment_course_id = c.course_id AND e.enrollment_deleted_at IS NULL
	WHERE c.course_deleted_at IS NULL
	GROUP BY c.course_id, c.course_title, c.course_status, c.course_price
	ORDER BY enrollment_count DESC, c.course_created_at DESC
	LIMIT ? OFFSET ?`, p.Limit, p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik kursus")
	}

	return helper.JsonList(c, "Statistik per kursus", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// TREND - GET /api/a/analytics/enrollments/trend?days=30
// =========================================================
func (h *AnalyticsController) EnrollmentTrend(c *fiber.Ctx) error {
	days := 30
	if v := strings.TrimSpace(c.Query("days")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 365 {
			days = n
		}
	}

	var rows []dto.EnrollmentTrendRow
	if err := h.DB.Raw(`SELECT
		to_char(date_trunc('day', enrollment_created_at), 'YYYY-MM-DD') AS day,
		COUNT(*) AS count
	FROM enrollments
	WHERE enrollment_created_at >= NOW() - make_interval(days => ?)
	  AND enrollment_deleted_at IS NULL
	GROUP BY 1
	ORDER BY 1 ASC`, days).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tren pendaftaran")
	}

	return helper.JsonOK(c, "Tren pendaftaran", fiber.Map{
		"days":  days,
		"items": rows,
	})
}
