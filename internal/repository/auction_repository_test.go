package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormAuctionRepository_HighestBid(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAuctionRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `bids` WHERE auction_id = \\? ORDER BY amount DESC").
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auction_id", "user_id", "amount", "created_at"}).
			AddRow(3, 7, 42, 25.50, now))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` = \\?").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(42, "carol"))

	bid, err := repo.HighestBid(7)
	require.NoError(t, err)
	require.Equal(t, 25.50, bid.Amount)
	require.Equal(t, uint64(42), bid.UserID)
	require.Equal(t, "carol", bid.User.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAuctionRepository_HighestBid_NoBids(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAuctionRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `bids` WHERE auction_id = \\? ORDER BY amount DESC").
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auction_id", "user_id", "amount", "created_at"}))

	_, err := repo.HighestBid(7)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAuctionRepository_PlaceBid_LocksAuctionRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAuctionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `auctions` WHERE `auctions`.`id` = \\? AND `auctions`.`deleted_at` IS NULL ORDER BY `auctions`.`id` LIMIT \\? FOR UPDATE").
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "initial_price", "current_price", "active"}).
			AddRow(7, 1, 10.00, 10.00, false))
	mock.ExpectRollback()

	_, err := repo.PlaceBid(7, 42, 20.00)
	require.ErrorIs(t, err, ErrListingClosed)

	require.NoError(t, mock.ExpectationsWereMet())
}
