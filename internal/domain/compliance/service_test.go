package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crackershop/internal/database"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Certificate{}))
	return NewService(NewRepository(db))
}

func TestStatusAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	valid := Certificate{ExpiryDate: now.AddDate(0, 6, 0)}
	assert.Equal(t, StatusValid, valid.StatusAt(now))

	expiring := Certificate{ExpiryDate: now.AddDate(0, 0, 15)}
	assert.Equal(t, StatusExpiring, expiring.StatusAt(now))

	// exactly 30 days out still counts as expiring
	boundary := Certificate{ExpiryDate: now.Add(30 * 24 * time.Hour)}
	assert.Equal(t, StatusExpiring, boundary.StatusAt(now))

	expired := Certificate{ExpiryDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, StatusExpired, expired.StatusAt(now))

	// expiry at this instant is already expired
	onTheDot := Certificate{ExpiryDate: now}
	assert.Equal(t, StatusExpired, onTheDot.StatusAt(now))
}

func TestListDerivesStatus(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateType: "PESO License", CertificateNo: "PESO/LIC/2024/001",
		ExpiryDate: now.AddDate(1, 0, 0),
	}))
	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateType: "Fire Safety Certificate", CertificateNo: "FSC/2025/104",
		ExpiryDate: now.AddDate(0, 0, 10),
	}))
	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateType: "Storage License", CertificateNo: "STG/2023/77",
		ExpiryDate: now.AddDate(0, -1, 0),
	}))

	certs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, certs, 3)

	byNo := map[string]CertStatus{}
	for _, c := range certs {
		byNo[c.CertificateNo] = c.Status
	}
	assert.Equal(t, StatusValid, byNo["PESO/LIC/2024/001"])
	assert.Equal(t, StatusExpiring, byNo["FSC/2025/104"])
	assert.Equal(t, StatusExpired, byNo["STG/2023/77"])
}

func TestAlertsSkipValidCertificates(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateNo: "OK/1", ExpiryDate: now.AddDate(1, 0, 0),
	}))
	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateNo: "SOON/1", ExpiryDate: now.AddDate(0, 0, 5),
	}))
	require.NoError(t, svc.Create(ctx, &Certificate{
		CertificateNo: "GONE/1", ExpiryDate: now.AddDate(0, 0, -5),
	}))

	alerts, err := svc.Alerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	for _, c := range alerts {
		assert.NotEqual(t, StatusValid, c.Status)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}
