package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errs "indoormap/internal/errors"
	"indoormap/internal/model"
	"indoormap/internal/service"
	"indoormap/internal/validation"
)

// BeaconHandler bundles beacon endpoints.
type BeaconHandler struct {
	beaconService service.BeaconService
}

// NewBeaconHandler creates the beacon handler layer.
func NewBeaconHandler(beaconService service.BeaconService) *BeaconHandler {
	return &BeaconHandler{beaconService: beaconService}
}

// CreateBeaconRequest represents a beacon creation request.
type CreateBeaconRequest struct {
	Position     []decimal.Decimal `json:"position" validate:"required,len=2"`
	Floor        *int              `json:"floor" validate:"required"`
	LocationType string            `json:"locationType" validate:"required"`
	InDoor       *bool             `json:"inDoor" validate:"required"`
}

// UpdateBeaconRequest represents a partial beacon update.
type UpdateBeaconRequest struct {
	Position     []decimal.Decimal `json:"position" validate:"omitempty,len=2"`
	Floor        *int              `json:"floor"`
	LocationType *string           `json:"locationType"`
	InDoor       *bool             `json:"inDoor"`
}

var beaconMessages = map[string]string{
	"Position":     "Missing X Y coordinates",
	"Floor":        "Missing floor",
	"LocationType": "Missing location type",
	"InDoor":       "Indoor missing",
}

// BeaconResponse renders a beacon with its position as an [x, y] pair.
type BeaconResponse struct {
	ID           uuid.UUID         `json:"id"`
	Position     []decimal.Decimal `json:"position"`
	Floor        int               `json:"floor"`
	LocationType string            `json:"locationType"`
	InDoor       bool              `json:"inDoor"`
}

func newBeaconResponse(b *model.Beacon) BeaconResponse {
	return BeaconResponse{
		ID:           b.ID,
		Position:     b.Position(),
		Floor:        b.Floor,
		LocationType: b.LocationType,
		InDoor:       b.InDoor,
	}
}

// Create godoc
// @Summary Create a beacon (admin only)
// @Tags beacons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBeaconRequest true "Beacon data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /beacons [post]
func (h *BeaconHandler) Create(c echo.Context) error {
	var req CreateBeaconRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, beaconMessages)))
	}

	beacon := &model.Beacon{
		PositionX:    req.Position[0],
		PositionY:    req.Position[1],
		Floor:        *req.Floor,
		LocationType: validation.Sanitize(req.LocationType),
		InDoor:       *req.InDoor,
	}
	created, err := h.beaconService.Create(c.Request().Context(), beacon)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while creating the beacon."))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"msg":     "Beacon was added successfully.",
		"URL":     fmt.Sprintf("/beacon/%s", created.ID),
	})
}

// List godoc
// @Summary List all beacons
// @Tags beacons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BeaconResponse
// @Failure 401 {object} errors.Response
// @Router /beacons [get]
func (h *BeaconHandler) List(c echo.Context) error {
	beacons, err := h.beaconService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail("An error occurred while retrieving beacons."))
	}

	resp := make([]BeaconResponse, 0, len(beacons))
	for i := range beacons {
		resp = append(resp, newBeaconResponse(&beacons[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "beacons": resp})
}

// Get godoc
// @Summary Get a beacon by id
// @Tags beacons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beacon ID"
// @Success 200 {object} BeaconResponse
// @Failure 404 {object} errors.Response
// @Router /beacons/{id} [get]
func (h *BeaconHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid beacon ID"))
	}

	beacon, err := h.beaconService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Could not find any beacon with the ID %s.", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error retrieving beacon ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "beacon": newBeaconResponse(beacon)})
}

// Update godoc
// @Summary Update a beacon (admin only)
// @Tags beacons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beacon ID"
// @Param request body UpdateBeaconRequest true "Fields to change"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /beacons/{id} [put]
func (h *BeaconHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid beacon ID"))
	}

	var req UpdateBeaconRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.FailAll(validation.Messages(err, beaconMessages)))
	}

	upd := service.BeaconUpdate{
		Position: req.Position,
		Floor:    req.Floor,
		InDoor:   req.InDoor,
	}
	if req.LocationType != nil {
		lt := validation.Sanitize(*req.LocationType)
		upd.LocationType = &lt
	}

	if _, err := h.beaconService.Update(c.Request().Context(), id, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("Cannot update beacon with id=%s. Check if beacon exists!", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error when changing beacon ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("Beacon id=%s has been updated successfully!", id)})
}

// Delete godoc
// @Summary Delete a beacon (admin only)
// @Tags beacons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beacon ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /beacons/{id} [delete]
func (h *BeaconHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.Fail("Invalid beacon ID"))
	}

	if err := h.beaconService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errs.Fail(fmt.Sprintf("It is not possible to delete the beacon with id=%s. Perhaps the beacon was not found!", id)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errs.Fail(fmt.Sprintf("Error deleting beacon with ID %s.", id)))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "msg": fmt.Sprintf("Beacon with id=%s was successfully deleted", id)})
}
