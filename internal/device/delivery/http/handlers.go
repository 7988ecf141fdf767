package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/device"
	repo "todo-backend/internal/device/repository"
	"todo-backend/internal/middleware"
	"todo-backend/internal/model"
	"todo-backend/pkg/response"
)

var errMissingID = errors.New("id is required")

type registerReq struct {
	ExpoPushToken string `json:"expo_push_token" binding:"required"`
	Platform      string `json:"platform"        binding:"required,oneof=ios android"`
}

func (r registerReq) toInput() device.RegisterDeviceInput {
	return device.RegisterDeviceInput{
		ExpoPushToken: r.ExpoPushToken,
		Platform:      r.Platform,
	}
}

type deviceResp struct {
	ID            string    `json:"id"`
	ExpoPushToken string    `json:"expo_push_token"`
	Platform      string    `json:"platform"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newDeviceResp(item model.Device) deviceResp {
	return deviceResp{
		ID:            item.ID,
		ExpoPushToken: item.ExpoPushToken,
		Platform:      item.Platform,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

type listResp struct {
	Devices []deviceResp `json:"devices"`
}

// mapError translates domain errors into HTTP errors. Store failures map to
// 500 with the detail kept out of the envelope.
func (h *handler) mapError(err error) error {
	switch err {
	case device.ErrDeviceNotFound:
		return response.NewHTTPError(404, "device not found")
	case device.ErrTokenRequired:
		return response.NewHTTPError(400, "push token is required")
	case device.ErrInvalidPlatform:
		return response.NewHTTPError(400, "platform must be ios or android")
	case repo.ErrFailedToUpsertDevice,
		repo.ErrFailedToGetDevice,
		repo.ErrFailedToListDevices,
		repo.ErrFailedToDeleteDevice:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	default:
		return err
	}
}

// Register godoc
// @Summary     Register a device
// @Description Stores the caller's Expo push token. Re-registering the same token refreshes it.
// @Tags        Device
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Device data"
// @Success     200 {object} deviceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/devices [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDeviceResp(output.Device))
}

// List godoc
// @Summary     List devices
// @Description Returns the caller's registered devices.
// @Tags        Device
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/devices [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	devices := make([]deviceResp, len(output.Devices))
	for i, item := range output.Devices {
		devices[i] = newDeviceResp(item)
	}
	response.OK(c, listResp{Devices: devices})
}

// Unregister godoc
// @Summary     Unregister a device
// @Description Removes a registered device by ID.
// @Tags        Device
// @Produce     json
// @Param       id path string true "Device ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/devices/{id} [DELETE]
func (h *handler) Unregister(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Unregister(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Unregister: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
