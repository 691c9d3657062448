package handlers

import (
	"net/http"

	"customer-records/internal/dto"
	"customer-records/internal/errors"
	"customer-records/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
	searchService   services.CustomerSearchServiceInterface
	defaultLimit    int
}

// NewCustomerHandler creates a new customer handler. defaultLimit is the page size of
// searches that do not pass a limit.
func NewCustomerHandler(
	customerService services.CustomerServiceInterface,
	searchService services.CustomerSearchServiceInterface,
	defaultLimit int,
) *CustomerHandler {
	if defaultLimit <= 0 {
		defaultLimit = services.DefaultSearchLimit
	}
	return &CustomerHandler{
		customerService: customerService,
		searchService:   searchService,
		defaultLimit:    defaultLimit,
	}
}

// CreateCustomer adds a customer
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer fields"
// @Success 201 {object} models.Customer "Created customer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customerService.AddCustomer(c.Request().Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusCreated, customer)
}

// GetCustomer retrieves a customer by ID
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer "Customer"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces the name, email and phone of a customer
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.CustomerRequest true "Customer fields"
// @Success 200 {object} models.Customer "Updated customer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customerService.UpdateCustomer(c.Request().Context(), id, req.Name, req.Email, req.Phone)
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer together with its interactions
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer "Removed customer"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		return SendStoreError(c, err, errors.CustomerNotFound)
	}

	return c.JSON(http.StatusOK, customer)
}

// SearchCustomers pages through the customers matching the optional filters
// @Summary Search customers
// @Description Case-insensitive substring match on each present filter, results ordered by id
// @Tags Customers
// @Produce json
// @Param name query string false "Name contains"
// @Param email query string false "Email contains"
// @Param phone query string false "Phone contains"
// @Param offset query int false "Items to skip" default(0)
// @Param limit query int false "Page size (max 1000, 0 for counts only)" default(10)
// @Success 200 {object} models.CustomerSearchResult "Search results"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/search [get]
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	page, err := bindPage(c, h.defaultLimit)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	req := dto.SearchCustomersRequest{
		Name:        optionalQueryParam(c, "name"),
		Email:       optionalQueryParam(c, "email"),
		Phone:       optionalQueryParam(c, "phone"),
		PageRequest: page,
	}

	result, err := h.searchService.SearchCustomers(c.Request().Context(), req.Filter(), req.Offset, req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
