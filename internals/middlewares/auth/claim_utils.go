// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Ambil dari Authorization header atau fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// 2) Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	idRaw, ok := claims["id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id")
	}
	switch v := idRaw.(type) {
	case string:
		return uuid.Parse(strings.TrimSpace(v))
	default:
		return uuid.Nil, fmt.Errorf("invalid user id type")
	}
}

type userGuardRow struct {
	IsActive           bool
	Role               string
	ActiveSessionToken *string
}

// ensureUserUsable memeriksa user masih ada, aktif, dan (untuk student)
// session token di klaim masih cocok dengan active_session_token di DB.
// Login baru merotasi active_session_token sehingga sesi lama gugur.
func ensureUserUsable(db *gorm.DB, userID uuid.UUID, claims jwt.MapClaims) error {
	var row userGuardRow
	if err := db.Table("users").
		Select("is_active, role, active_session_token").
		Where("id = ? AND deleted_at IS NULL", userID).
		Take(&row).Error; err != nil {
		return err
	}
	if !row.IsActive {
		return errInactive
	}
	if row.Role == "student" {
		sid, _ := claims["sid"].(string)
		if row.ActiveSessionToken == nil || sid == "" || sid != *row.ActiveSessionToken {
			return errStaleSession
		}
	}
	return nil
}

var (
	errInactive     = errors.New("user inactive")
	errStaleSession = errors.New("session superseded")
)

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if userName, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", userName)
	}
	if sid, ok := claims["sid"].(string); ok && sid != "" {
		c.Locals("session_id", sid)
	}
	log.Printf("[DEBUG] claims tersimpan di Locals (role=%v)", c.Locals("userRole"))
}
