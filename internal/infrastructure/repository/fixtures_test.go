package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/infrastructure/persistence/testdb"
	"helpdesk/internal/shared/logger"
)

// Row ids produced by the embedded seed file on an empty database.
const (
	statusOpen       uint = 1
	statusInProgress uint = 2
	statusResolved   uint = 5
	statusClosed     uint = 6

	priorityLow      uint = 1
	priorityMedium   uint = 2
	priorityCritical uint = 4

	categoryHardware uint = 1
	categoryNetwork  uint = 3
	categoryOther    uint = 7

	adminID   uint = 1
	itstaffID uint = 2
	userID    uint = 3
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return "plain:" + pw, nil }
func (plainHasher) Verify(pw, hash string) bool    { return hash == "plain:"+pw }

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testdb.New(t)
	seeder := seeds.NewSeeder(db, plainHasher{}, NewArticleRepository(db), logger.NewNopLogger())
	require.NoError(t, seeder.Run(context.Background()))
	return db
}

var ticketSeq int

func insertTicket(t *testing.T, db *gorm.DB, statusID, priorityID, requesterID uint, createdAt time.Time, opts ...func(*models.TicketModel)) *models.TicketModel {
	t.Helper()
	ticketSeq++
	m := &models.TicketModel{
		TicketNumber: fmt.Sprintf("TKT-%s-%08X", createdAt.Format("20060102"), ticketSeq),
		Title:        fmt.Sprintf("ticket %d", ticketSeq),
		Description:  "details",
		StatusID:     statusID,
		PriorityID:   priorityID,
		CategoryID:   categoryHardware,
		RequesterID:  requesterID,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	for _, opt := range opts {
		opt(m)
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func insertUser(t *testing.T, db *gorm.DB, username, role string) *models.UserModel {
	t.Helper()
	m := &models.UserModel{
		Username:     username,
		PasswordHash: "plain:secret",
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		Role:         role,
		CreatedAt:    base,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func timePtr(t time.Time) *time.Time { return &t }

func uintPtr(v uint) *uint { return &v }
