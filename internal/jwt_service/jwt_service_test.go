package jwt_service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
)

func testJWTConfig(exp time.Duration) *JWTConfig {
	return &JWTConfig{
		SecretKey: strings.Repeat("s", 32),
		TokenExp:  config.Duration(exp),
		Issuer:    "mesto-api-test",
	}
}

// проверяем, что выпущенный токен возвращает тот же ID пользователя
func TestGenerateAndParse_Success(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour))
	userID := "user-123"

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotUserID, err := svc.ParseUserID(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

// токен с истёкшим сроком действия не проходит проверку
func TestParseUserID_Expired(t *testing.T) {
	svc := NewJWTService(testJWTConfig(-1 * time.Second))

	token, err := svc.GenerateToken("u1")
	require.NoError(t, err)

	_, err = svc.ParseUserID(token)
	assert.Error(t, err)
}

// токен, подписанный другим секретом, не проходит проверку
func TestParseUserID_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testJWTConfig(time.Hour))
	verifier := NewJWTService(&JWTConfig{
		SecretKey: strings.Repeat("x", 32),
		TokenExp:  config.Duration(time.Hour),
	})

	token, err := issuer.GenerateToken("u2")
	require.NoError(t, err)

	_, err = verifier.ParseUserID(token)
	assert.Error(t, err)
}

// строка, не являющаяся JWT, отклоняется
func TestParseUserID_Malformed(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour))

	_, err := svc.ParseUserID("not.a.jwt")
	assert.Error(t, err)

	_, err = svc.ParseUserID("")
	assert.Error(t, err)
}

// подмена полезной нагрузки ломает подпись
func TestParseUserID_TamperedPayload(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour))

	token, err := svc.GenerateToken("u3")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// меняем середину payload, подпись остаётся старой
	payload := []byte(parts[1])
	payload[len(payload)/2] ^= 0x01
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.ParseUserID(tampered)
	assert.Error(t, err)
}

// токен без подписи (alg=none) отклоняется парсером
func TestParseUserID_NoneAlgorithm(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour))

	claims := NewClaims(time.Hour, "u4", "mesto-api-test")
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseUserID(token)
	assert.Error(t, err)
}

// токен без user_id бесполезен, даже если подпись верна
func TestParseUserID_MissingUserID(t *testing.T) {
	conf := testJWTConfig(time.Hour)
	svc := NewJWTService(conf)

	claims := NewClaims(time.Hour, "", conf.Issuer)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.SecretKey))
	require.NoError(t, err)

	_, err = svc.ParseUserID(token)
	assert.Error(t, err)
}

// проверяем валидацию конфига JWT
func TestValidateJWTConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validateJWTConfig(testJWTConfig(7*24*time.Hour)))
	})

	t.Run("empty secret", func(t *testing.T) {
		conf := testJWTConfig(time.Hour)
		conf.SecretKey = ""
		assert.Error(t, validateJWTConfig(conf))
	})

	t.Run("short secret", func(t *testing.T) {
		conf := testJWTConfig(time.Hour)
		conf.SecretKey = "short"
		assert.Error(t, validateJWTConfig(conf))
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		assert.Error(t, validateJWTConfig(testJWTConfig(0)))
	})

	t.Run("expiry too long", func(t *testing.T) {
		assert.Error(t, validateJWTConfig(testJWTConfig(365*24*time.Hour)))
	})
}
