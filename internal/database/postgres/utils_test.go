package postgres

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/database/generated"
)

func TestToInt32Saturates(t *testing.T) {
	tests := []struct {
		in   int
		want int32
	}{
		{0, 0},
		{150, 150},
		{-3, -3},
		{math.MaxInt32 + 1, math.MaxInt32},
		{math.MinInt32 - 1, math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, toInt32(tt.in))
		})
	}
}

func TestToInt16Saturates(t *testing.T) {
	assert.Equal(t, int16(6), toInt16(6))
	assert.Equal(t, int16(math.MaxInt16), toInt16(math.MaxInt16+10))
	assert.Equal(t, int16(math.MinInt16), toInt16(math.MinInt16-10))
}

func TestToDomainProfile(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	row := generated.Profile{
		AccountID:        "p1",
		Name:             "Hero",
		Experience:       12,
		Level:            4,
		Trophies:         105,
		BattlesWon:       7,
		NftsOwned:        2,
		League:           2,
		BattleMultiplier: 13,
		CreatedAt:        pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:        timestamptz(created.Add(time.Hour)),
	}

	p := toDomainProfile(row)
	require.NotNil(t, p)
	assert.True(t, p.Exists)
	assert.Equal(t, "p1", p.AccountID)
	assert.Equal(t, 105, p.Trophies)
	assert.Equal(t, 2, p.League)
	assert.Equal(t, 2, p.NFTsOwned)
	assert.Equal(t, 13, p.BattleMultiplier)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), p.UpdatedAt)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: PgErrorCodeUniqueViolation})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
	assert.False(t, isUniqueViolation(nil))
}
