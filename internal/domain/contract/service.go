package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
)

type ScrumService interface {
	RunOnce(ctx context.Context, trigger domain.Trigger) (*entity.RunResult, error)
	Preview(ctx context.Context) (*entity.RunResult, error)
	FindMissingMembers(ctx context.Context, today time.Time) []entity.Member
	ComposeAndPublish(ctx context.Context, today time.Time, missing []entity.Member) (*entity.ThreadHandle, error)
}
