//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairycoop-data/internal/config"
	"dairycoop-data/internal/database"
	"dairycoop-data/internal/domain"
)

func getTestDB(t *testing.T) *sql.DB {
	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		t.Skipf("Skipping integration test: database not available: %v", err)
	}
	return db
}

func TestFarmerCRUD_RoundTrip(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	ctx := context.Background()
	repo := NewPostgresFarmersRepository(db)

	f := &domain.Farmer{
		ID:            "FARM9901",
		Name:          "Integration Farmer",
		Phone:         "+91-9999999901",
		Village:       "Testpur",
		CattleCount:   5,
		DailyCapacity: 30,
		JoinDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:        "Active",
	}
	_ = repo.DeleteFarmer(ctx, f.ID)

	require.NoError(t, repo.CreateFarmer(ctx, f))

	got, err := repo.GetFarmer(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, f.Village, got.Village)

	f.Village = "Newpur"
	require.NoError(t, repo.UpdateFarmer(ctx, f))

	got, err = repo.GetFarmer(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Newpur", got.Village)

	// Re-sending the same values is a no-op, not an error.
	require.NoError(t, repo.UpdateFarmer(ctx, f))

	again, err := repo.GetFarmer(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Name, again.Name)
	assert.Equal(t, got.Village, again.Village)
	assert.Equal(t, got.CattleCount, again.CattleCount)
	assert.Equal(t, got.Status, again.Status)

	require.NoError(t, repo.DeleteFarmer(ctx, f.ID))

	_, err = repo.GetFarmer(ctx, f.ID)
	assert.True(t, IsNotFound(err))
}

func TestMessageForeignKey(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	ctx := context.Background()
	farmers := NewPostgresFarmersRepository(db)
	messages := NewPostgresMessagesRepository(db)

	farmer := &domain.Farmer{
		ID:            "FARM9902",
		Name:          "FK Farmer",
		Phone:         "+91-9999999902",
		Village:       "Testpur",
		DailyCapacity: 10,
		JoinDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:        "Active",
	}
	_ = messages.DeleteMessage(ctx, "MSG901")
	_ = farmers.DeleteFarmer(ctx, farmer.ID)
	require.NoError(t, farmers.CreateFarmer(ctx, farmer))
	defer func() {
		_ = messages.DeleteMessage(ctx, "MSG901")
		_ = farmers.DeleteFarmer(ctx, farmer.ID)
	}()

	ok := &domain.Message{
		ID:        "MSG901",
		FarmerID:  farmer.ID,
		Subject:   "Integration",
		Message:   "Hello",
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Status:    "Sent",
		Priority:  "Medium",
	}
	require.NoError(t, messages.CreateMessage(ctx, ok))

	orphan := &domain.Message{
		ID:        "MSG902",
		FarmerID:  "FARM0000",
		Subject:   "Orphan",
		Message:   "Should fail",
		Timestamp: time.Now(),
		Status:    "Sent",
		Priority:  "Low",
	}
	err := messages.CreateMessage(ctx, orphan)
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
}

func TestExpiringCertificationsWindow(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	ctx := context.Background()
	repo := NewPostgresCertificationsRepository(db)

	// The window is inclusive at today+days: the boundary day is in, the
	// day after is out.
	inWindow := &domain.Certification{
		ID:          "CERT9901",
		Name:        "In Window",
		IssuingBody: "Test Body",
		IssueDate:   time.Now().AddDate(-1, 0, 0),
		ExpiryDate:  time.Now().AddDate(0, 0, 10),
		Status:      "Valid",
	}
	boundary := &domain.Certification{
		ID:          "CERT9902",
		Name:        "Boundary Day",
		IssuingBody: "Test Body",
		IssueDate:   time.Now().AddDate(-1, 0, 0),
		ExpiryDate:  time.Now().AddDate(0, 0, 30),
		Status:      "Valid",
	}
	dayAfter := &domain.Certification{
		ID:          "CERT9903",
		Name:        "Day After Boundary",
		IssuingBody: "Test Body",
		IssueDate:   time.Now().AddDate(-1, 0, 0),
		ExpiryDate:  time.Now().AddDate(0, 0, 31),
		Status:      "Valid",
	}
	all := []*domain.Certification{inWindow, boundary, dayAfter}
	for _, c := range all {
		_ = repo.DeleteCertification(ctx, c.ID)
		require.NoError(t, repo.CreateCertification(ctx, c))
	}
	defer func() {
		for _, c := range all {
			_ = repo.DeleteCertification(ctx, c.ID)
		}
	}()

	certs, err := repo.ListExpiringCertifications(ctx, 30)
	require.NoError(t, err)

	ids := make(map[string]bool, len(certs))
	for _, c := range certs {
		ids[c.ID] = true
	}
	assert.True(t, ids[inWindow.ID])
	assert.True(t, ids[boundary.ID], "certification expiring exactly in 30 days belongs in the 30-day window")
	assert.False(t, ids[dayAfter.ID])
}
