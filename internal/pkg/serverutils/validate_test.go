package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name   string `validate:"required"`
	Status string `validate:"omitempty,oneof=pending approved"`
}

func TestValidateRequestPasses(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "ok"}))
}

func TestValidateRequestReportsFirstFailure(t *testing.T) {
	err := ValidateRequest(sampleRequest{})
	assert.Error(t, err)

	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Name")
}

func TestValidateRequestRejectsUnknownStatus(t *testing.T) {
	err := ValidateRequest(sampleRequest{Name: "ok", Status: "bogus"})
	assert.Error(t, err)
}
