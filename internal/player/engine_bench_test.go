package player

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/database/memory"
	"github.com/osse101/HeroArena_Go/internal/league"
)

func BenchmarkApplyBattle(b *testing.B) {
	table := league.DefaultTable()
	p := freshProfile()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyBattle(p, table, i%3 != 0)
	}
}

func BenchmarkRecordBattleResult(b *testing.B) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), league.DefaultTable(), concurrency.NewLockManager(), nil, CacheConfig{})

	const accounts = 64
	for i := 0; i < accounts; i++ {
		if _, err := svc.CreateProfile(ctx, fmt.Sprintf("acct-%d", i), "bench"); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.RecordBattleResult(ctx, fmt.Sprintf("acct-%d", i%accounts), i%2 == 0); err != nil {
			b.Fatal(err)
		}
	}
}
