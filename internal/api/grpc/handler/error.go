package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/contactbook/internal/model"
)

func handleError(err error) error {
	var e *model.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal server error")
	}

	switch e.Kind {
	case model.KindValidation:
		return status.Error(codes.InvalidArgument, e.Message)
	case model.KindConflict:
		return status.Error(codes.AlreadyExists, e.Message)
	case model.KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	default:
		return status.Error(codes.Internal, e.Message)
	}
}
