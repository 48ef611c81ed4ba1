package toggle_availability

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/service/availability/models"
)

type AvailabilityService interface {
	Toggle(ctx context.Context, ownerID string, req *models.ToggleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
