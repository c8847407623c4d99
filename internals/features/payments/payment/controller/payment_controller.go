// internals/features/payments/payment/controller/payment_controller.go
package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	dto "belajarku_backend/internals/features/payments/payment/dto"
	model "belajarku_backend/internals/features/payments/payment/model"
	service "belajarku_backend/internals/features/payments/payment/service"
	helper "belajarku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

/* =======================================================================
   Listing
======================================================================= */

// GET /api/u/payments — riwayat pembayaran user login
func (h *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.PaymentModel{}).
		Where("payment_user_id = ?", userID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("payment_status = ?", strings.ToUpper(st))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.PaymentModel
	if err := tx.Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Riwayat pembayaran", dto.ToPaymentResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// POST /api/payments/notification — dipanggil Midtrans, tanpa auth (skip-path).
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY", "")
	want := strings.ToLower(notif.SignatureKey)
	got := sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + serverKey)
	if want == "" || got != want {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	// simpan payload mentah untuk audit, apapun statusnya
	if raw := c.Body(); len(raw) > 0 {
		h.DB.Model(&model.PaymentModel{}).
			Where("payment_order_id = ?", notif.OrderID).
			Update("payment_gateway_payload", datatypes.JSON(append([]byte(nil), raw...)))
	}

	status := notif.TransactionStatus
	switch status {
	case "capture":
		// kartu kredit: hanya fraud accept yang dianggap lunas
		if notif.FraudStatus != "accept" {
			return c.JSON(fiber.Map{"status": "ok", "note": "capture challenged"})
		}
		fallthrough
	case "settlement":
		paidAt := time.Now()
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", notif.SettlementTime, time.Local); err == nil {
			paidAt = t
		}
		p, err := service.SettlePayment(h.DB, notif.OrderID, notif.PaymentType, paidAt)
		if err != nil {
			// balas 200 agar Midtrans tidak retry untuk order yang memang tidak ada
			log.Printf("[PAYMENT] ⚠️ settle %s gagal: %v", notif.OrderID, err)
			return c.JSON(fiber.Map{"status": "ignored"})
		}
		return c.JSON(fiber.Map{"status": "ok", "payment_status": p.PaymentStatus})

	case "expire":
		_ = service.MarkPaymentFailed(h.DB, notif.OrderID, model.PaymentStatusExpired)
	case "cancel", "deny", "failure":
		_ = service.MarkPaymentFailed(h.DB, notif.OrderID, model.PaymentStatusCanceled)
	}

	return c.JSON(fiber.Map{"status": "ok", "transaction_status": status})
}
