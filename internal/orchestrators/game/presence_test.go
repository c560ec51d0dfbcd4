package game_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/cryptoconquerors/realm-api/internal/orchestrators/game"
	gamemock "github.com/cryptoconquerors/realm-api/internal/orchestrators/game/mock"
)

func TestPublisherBeatsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := gamemock.NewMockService(ctrl)

	svc.EXPECT().
		Heartbeat(gomock.Any(), gomock.Any()).
		Return(&game.HeartbeatOutput{}, nil).
		MinTimes(2)

	pub := game.NewPublisher(svc, &game.Session{}, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	pub.Run(ctx)
}
