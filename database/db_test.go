package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Init(path))
	return GetDB()
}

func TestInitSeedsFixedAdmins(t *testing.T) {
	db := initTestDB(t)

	var admins []AdminUser
	require.NoError(t, db.Order("username").Find(&admins).Error)
	require.Len(t, admins, 3)

	byName := map[string]AdminUser{}
	for _, a := range admins {
		byName[a.Username] = a
	}

	assert.Equal(t, "Administrator", byName["admin"].Role)
	assert.Equal(t, "Pastor", byName["pastor"].Role)
	assert.Equal(t, "Elder", byName["elder"].Role)
	assert.Equal(t, "admin@sefwihumjibresda.org", byName["admin"].Email)

	// hashes, never plaintext
	for _, a := range admins {
		assert.NotContains(t, string(a.PasswordHash), "sda2025")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Init(path))

	admin, err := VerifyAdmin(GetDB(), "admin", "sda2025")
	require.NoError(t, err)
	originalHash := admin.PasswordHash

	require.NoError(t, Init(path))

	var count int64
	require.NoError(t, GetDB().Model(&AdminUser{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	admin, err = VerifyAdmin(GetDB(), "admin", "sda2025")
	require.NoError(t, err)
	assert.Equal(t, originalHash, admin.PasswordHash, "reseeding must not reset passwords")
}

func TestVerifyAdmin(t *testing.T) {
	db := initTestDB(t)

	t.Run("correct credentials", func(t *testing.T) {
		admin, err := VerifyAdmin(db, "pastor", "pastor123")
		require.NoError(t, err)
		assert.Equal(t, "Pastor", admin.Role)
		assert.Equal(t, "pastor@sefwihumjibresda.org", admin.Email)
	})

	t.Run("wrong password and unknown user look identical", func(t *testing.T) {
		_, errWrongPassword := VerifyAdmin(db, "pastor", "nope")
		_, errUnknownUser := VerifyAdmin(db, "nobody", "nope")

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownUser)
	})
}

func TestGetAdminByToken(t *testing.T) {
	db := initTestDB(t)

	var admin AdminUser
	require.NoError(t, db.Where("username = ?", "elder").First(&admin).Error)
	admin.SessionToken = "token-123"
	require.NoError(t, db.Save(&admin).Error)

	found, err := GetAdminByToken(db, "token-123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "elder", found.Username)

	missing, err := GetAdminByToken(db, "bogus")
	require.NoError(t, err)
	assert.Nil(t, missing)

	empty, err := GetAdminByToken(db, "")
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestGetNewsBySlug(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, db.Create(&NewsPost{
		Title:  "Harvest Service",
		Slug:   "harvest-service",
		Author: "pastor",
	}).Error)

	found, err := GetNewsBySlug(db, "harvest-service")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Harvest Service", found.Title)

	missing, err := GetNewsBySlug(db, "no-such-post")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetDonationStats(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Donation{}))

	donations := []Donation{
		{DonorName: "Ama", DonorPhone: "1", Amount: 50, Purpose: "tithe", Provider: "mtn", ReferenceNumber: "SDA1", Status: "completed"},
		{DonorName: "Kofi", DonorPhone: "2", Amount: 20, Purpose: "tithe", Provider: "mtn", ReferenceNumber: "SDA2", Status: "completed"},
		{DonorName: "Esi", DonorPhone: "3", Amount: 100, Purpose: "building", Provider: "vodafone", ReferenceNumber: "SDA3", Status: "completed"},
		{DonorName: "Yaw", DonorPhone: "4", Amount: 999, Purpose: "tithe", Provider: "mtn", ReferenceNumber: "SDA4", Status: "pending"},
	}
	for i := range donations {
		require.NoError(t, db.Create(&donations[i]).Error)
	}

	stats, err := GetDonationStats(db, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalCount, "pending donations are excluded")
	assert.Equal(t, 170.0, stats.TotalAmount)
	assert.Len(t, stats.Recent, 2)

	byPurpose := map[string]PurposeStat{}
	for _, s := range stats.ByPurpose {
		byPurpose[s.Purpose] = s
	}
	assert.Equal(t, int64(2), byPurpose["tithe"].Count)
	assert.Equal(t, 70.0, byPurpose["tithe"].Amount)
	assert.Equal(t, 100.0, byPurpose["building"].Amount)
}

func TestGetDonationStatsEmptyTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Donation{}))

	stats, err := GetDonationStats(db, 10)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCount)
	assert.Zero(t, stats.TotalAmount)
	assert.Empty(t, stats.ByPurpose)
	assert.Empty(t, stats.Recent)
}
