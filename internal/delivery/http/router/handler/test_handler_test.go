package handler

import (
	"net/http"
	"testing"

	"shopkeep/internal/domain/entity"
	mockUC "shopkeep/internal/mocks/usecase"
	"shopkeep/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTestHandler_Seed(t *testing.T) {
	seed := int64(42)

	tests := []struct {
		name string
		body string
		seed *int64
	}{
		{name: "set seed", body: `{"seed":42}`, seed: &seed},
		{name: "clear seed", body: `{"seed":null}`, seed: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gameUC := mockUC.NewMockGameUsecase(t)
			gameUC.EXPECT().Seed(mock.Anything, tt.seed).Return(&usecase.GameView{
				State:  entity.NewGameState(100),
				Seeded: tt.seed != nil,
			}, nil)

			h := NewTestHandler(TestHandlerParams{GameUC: gameUC})
			e := newTestEcho()
			e.POST("/test/seed", h.Seed)

			rec, env := doRequest(t, e, http.MethodPost, "/test/seed", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Random source seeded", env.Message)
		})
	}
}
