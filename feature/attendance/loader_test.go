package attendance

import (
	"testing"

	"roster-manager/core/roster"
	"roster-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	feature := NewFeature(roster.NewStore(), mockClient, "test-bucket", "Attendance", zap.NewNop())

	assert.Equal(t, "attendance", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
