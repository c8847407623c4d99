// internals/features/payments/payment/service/midtrans_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"belajarku_backend/internals/configs"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// MIDTRANS_ENV=production → Production, selain itu Sandbox.
func InitMidtrans(serverKey string) {
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV", "sandbox"), "production") {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Snap Token
========================================================= */

type CheckoutCustomer struct {
	FullName string
	Email    string
}

// BuildOrderID: order id unik & mudah dilacak di dashboard Midtrans.
func BuildOrderID(prefix string, t time.Time, suffix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, t.Format("20060102150405"), suffix)
}

// GenerateSnapToken membuat transaksi Snap untuk checkout kursus.
// Mengembalikan (token, redirectURL).
func GenerateSnapToken(orderID string, amount int64, courseTitle string, cust CheckoutCustomer) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("invalid payment amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FullName,
			Email: cust.Email,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    amount,
				Qty:      1,
				Name:     truncate(courseTitle, 50),
				Category: "Course",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
