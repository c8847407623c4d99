package dto

import (
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/payments/payment/model"
)

type PaymentResponse struct {
	PaymentID          uuid.UUID  `json:"payment_id"`
	PaymentCourseID    uuid.UUID  `json:"payment_course_id"`
	PaymentOrderID     string     `json:"payment_order_id"`
	PaymentAmount      int64      `json:"payment_amount"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentSnapToken   *string    `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string    `json:"payment_redirect_url,omitempty"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
	PaymentPaidAt      *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt   time.Time  `json:"payment_created_at"`
}

func ToPaymentResponse(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentCourseID:    m.PaymentCourseID,
		PaymentOrderID:     m.PaymentOrderID,
		PaymentAmount:      m.PaymentAmount,
		PaymentStatus:      m.PaymentStatus,
		PaymentSnapToken:   m.PaymentSnapToken,
		PaymentRedirectURL: m.PaymentRedirectURL,
		PaymentMethod:      m.PaymentMethod,
		PaymentPaidAt:      m.PaymentPaidAt,
		PaymentCreatedAt:   m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToPaymentResponse(&list[i]))
	}
	return out
}
