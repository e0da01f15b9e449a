package save_service

import (
	"context"

	saveService "github.com/bookeasy/admin-service/internal/usecase/save_service"
)

type SaveServiceUseCase interface {
	Execute(ctx context.Context, req *saveService.Request) (*saveService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
