package handlers

import (
	"net/http"

	"customer-records/internal/dto"
	"customer-records/internal/errors"
	"customer-records/internal/services"

	"github.com/labstack/echo/v4"
)

// InteractionHandler handles interaction-related HTTP requests
type InteractionHandler struct {
	interactionService services.InteractionServiceInterface
	defaultLimit       int
}

func NewInteractionHandler(interactionService services.InteractionServiceInterface, defaultLimit int) *InteractionHandler {
	if defaultLimit <= 0 {
		defaultLimit = services.DefaultSearchLimit
	}
	return &InteractionHandler{interactionService: interactionService, defaultLimit: defaultLimit}
}

// CreateInteraction records an interaction with an existing customer
// @Summary Create interaction
// @Tags Interactions
// @Accept json
// @Produce json
// @Param request body dto.InteractionRequest true "Interaction payload"
// @Success 201 {object} models.Interaction "Created interaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /interactions [post]
func (h *InteractionHandler) CreateInteraction(c echo.Context) error {
	var req dto.InteractionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	interaction, err := h.interactionService.AddInteraction(c.Request().Context(), req.Payload())
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusCreated, interaction)
}

// GetInteraction retrieves an interaction by ID
// @Summary Get interaction
// @Tags Interactions
// @Produce json
// @Param id path int true "Interaction ID"
// @Success 200 {object} models.Interaction "Interaction"
// @Failure 400 {object} errors.ErrorResponse "INTERACTION_002 - Invalid interaction ID format"
// @Failure 404 {object} errors.ErrorResponse "INTERACTION_001 - Interaction not found"
// @Router /interactions/{id} [get]
func (h *InteractionHandler) GetInteraction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.InteractionInvalidID)
	}

	interaction, err := h.interactionService.GetInteraction(c.Request().Context(), id)
	if err != nil {
		return SendStoreError(c, err, errors.InteractionNotFound)
	}

	return c.JSON(http.StatusOK, interaction)
}

// UpdateInteraction overwrites an interaction's payload and stamps updated_at
// @Summary Update interaction
// @Tags Interactions
// @Accept json
// @Produce json
// @Param id path int true "Interaction ID"
// @Param request body dto.InteractionRequest true "Interaction payload"
// @Success 200 {object} models.Interaction "Updated interaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Failure 404 {object} errors.ErrorResponse "INTERACTION_001 or CUSTOMER_001 - Interaction or customer not found"
// @Router /interactions/{id} [put]
func (h *InteractionHandler) UpdateInteraction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.InteractionInvalidID)
	}

	var req dto.InteractionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	interaction, err := h.interactionService.UpdateInteraction(c.Request().Context(), id, req.Payload())
	if err != nil {
		return SendStoreError(c, err, errors.InteractionNotFound)
	}

	return c.JSON(http.StatusOK, interaction)
}

// DeleteInteraction removes an interaction and returns it
// @Summary Delete interaction
// @Tags Interactions
// @Produce json
// @Param id path int true "Interaction ID"
// @Success 200 {object} models.Interaction "Removed interaction"
// @Failure 404 {object} errors.ErrorResponse "INTERACTION_001 - Interaction not found"
// @Router /interactions/{id} [delete]
func (h *InteractionHandler) DeleteInteraction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.InteractionInvalidID)
	}

	interaction, err := h.interactionService.DeleteInteraction(c.Request().Context(), id)
	if err != nil {
		return SendStoreError(c, err, errors.InteractionNotFound)
	}

	return c.JSON(http.StatusOK, interaction)
}

// ListCustomerInteractions pages through the interactions of one customer
// @Summary List customer interactions
// @Tags Interactions
// @Produce json
// @Param id path int true "Customer ID"
// @Param offset query int false "Items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.InteractionList "Interactions ordered by id"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/interactions [get]
func (h *InteractionHandler) ListCustomerInteractions(c echo.Context) error {
	customerID, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	page, err := bindPage(c, h.defaultLimit)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	list, err := h.interactionService.ListCustomerInteractions(c.Request().Context(), customerID, page.Offset, page.Limit)
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusOK, list)
}
