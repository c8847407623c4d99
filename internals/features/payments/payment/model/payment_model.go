package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pembayaran (mengikuti siklus notifikasi Midtrans)
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusExpired  = "EXPIRED"
	PaymentStatusCanceled = "CANCELED"
)

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	PaymentUserID       uuid.UUID `json:"payment_user_id" gorm:"column:payment_user_id;type:uuid;not null;index:idx_payments_user"`
	PaymentCourseID     uuid.UUID `json:"payment_course_id" gorm:"column:payment_course_id;type:uuid;not null;index:idx_payments_course"`
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id;type:uuid;not null;index:idx_payments_enrollment"`

	// order id yang dikirim ke Midtrans; kunci pencocokan webhook
	PaymentOrderID string `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(64);uniqueIndex:uq_payments_order_id;not null"`

	PaymentAmount int64  `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentStatus string `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'PENDING';index:idx_payments_status"`

	PaymentSnapToken   *string `json:"payment_snap_token,omitempty" gorm:"column:payment_snap_token;type:varchar(255)"`
	PaymentRedirectURL *string `json:"payment_redirect_url,omitempty" gorm:"column:payment_redirect_url;type:varchar(500)"`
	PaymentMethod      *string `json:"payment_method,omitempty" gorm:"column:payment_method;type:varchar(50)"`

	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at;type:timestamptz"`

	// payload notifikasi terakhir dari gateway, untuk audit
	PaymentGatewayPayload datatypes.JSON `json:"payment_gateway_payload,omitempty" gorm:"column:payment_gateway_payload;type:jsonb"`

	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;autoCreateTime"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PaymentDeletedAt gorm.DeletedAt `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;index"`
}

func (PaymentModel) TableName() string { return "payments" }
