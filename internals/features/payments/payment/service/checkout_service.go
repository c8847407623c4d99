// internals/features/payments/payment/service/checkout_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/courses/course/model"
	enrollmentModel "belajarku_backend/internals/features/enrollments/enrollment/model"
	paymentModel "belajarku_backend/internals/features/payments/payment/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

// CreateCheckout membuat payment PENDING + Snap token untuk satu enrollment
// kursus berbayar. Kalau masih ada payment PENDING yang tokennya hidup,
// pakai ulang token itu (hindari double charge).
func CreateCheckout(db *gorm.DB, user *userModel.UserModel, course *courseModel.CourseModel, enr *enrollmentModel.EnrollmentModel) (*paymentModel.PaymentModel, error) {
	if course.CoursePrice <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Kursus ini gratis")
	}

	var existing paymentModel.PaymentModel
	err := db.
		Where("payment_enrollment_id = ? AND payment_status = ?", enr.EnrollmentID, paymentModel.PaymentStatusPending).
		Order("payment_created_at DESC").
		First(&existing).Error
	if err == nil && existing.PaymentSnapToken != nil {
		return &existing, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	orderID := BuildOrderID("CRS", now, enr.EnrollmentID.String()[:8])

	fullName := user.UserName
	if user.FullName != nil && *user.FullName != "" {
		fullName = *user.FullName
	}
	token, redirectURL, err := GenerateSnapToken(orderID, course.CoursePrice, course.CourseTitle, CheckoutCustomer{
		FullName: fullName,
		Email:    user.Email,
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	p := &paymentModel.PaymentModel{
		PaymentUserID:       user.ID,
		PaymentCourseID:     course.CourseID,
		PaymentEnrollmentID: enr.EnrollmentID,
		PaymentOrderID:      orderID,
		PaymentAmount:       course.CoursePrice,
		PaymentStatus:       paymentModel.PaymentStatusPending,
		PaymentSnapToken:    &token,
		PaymentRedirectURL:  &redirectURL,
	}
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// SettlePayment menandai payment PAID dan mengaktifkan enrollment-nya,
// dalam satu transaksi. Idempotent: payment yang sudah PAID tidak diproses ulang.
func SettlePayment(db *gorm.DB, orderID, method string, paidAt time.Time) (*paymentModel.PaymentModel, error) {
	var p paymentModel.PaymentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "payment_order_id = ?", orderID).Error; err != nil {
			return err
		}
		if p.PaymentStatus == paymentModel.PaymentStatusPaid {
			return nil
		}

		updates := map[string]any{
			"payment_status":  paymentModel.PaymentStatusPaid,
			"payment_paid_at": paidAt,
		}
		if method != "" {
			updates["payment_method"] = method
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_id = ? AND enrollment_status = ?",
				p.PaymentEnrollmentID, enrollmentModel.EnrollmentStatusPending).
			Update("enrollment_status", enrollmentModel.EnrollmentStatusActive).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaymentFailed menutup payment yang expire/cancel/deny.
func MarkPaymentFailed(db *gorm.DB, orderID, status string) error {
	return db.Model(&paymentModel.PaymentModel{}).
		Where("payment_order_id = ? AND payment_status = ?", orderID, paymentModel.PaymentStatusPending).
		Update("payment_status", status).Error
}
