package handler

import (
	"bytes"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/messages"
	"restaurant/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BillHandler handles bill endpoints.
type BillHandler struct {
	billService service.BillService
}

// NewBillHandler creates a new bill handler.
func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// GenerateBillRequest bills an order. The order's user is billed when userId is omitted.
type GenerateBillRequest struct {
	OrderID     string `json:"orderId" validate:"required,uuid"`
	UserID      string `json:"userId" validate:"omitempty,uuid"`
	PaymentMode string `json:"paymentMode" validate:"required,max=50"`
	Discount    bool   `json:"discount"`
}

// UpdateBillRequest changes how a bill is paid or discounted.
type UpdateBillRequest struct {
	PaymentMode *string `json:"paymentMode" validate:"omitempty,max=50"`
	Discount    *bool   `json:"discount"`
}

// GenerateBill godoc
// @Summary Generate a bill for an order
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateBillRequest true "Bill"
// @Success 201 {object} errors.Response{data=model.Bill}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /bills [post]
func (h *BillHandler) GenerateBill(c echo.Context) error {
	var req GenerateBillRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	bill, err := h.billService.Generate(c.Request().Context(), service.GenerateBillInput{
		OrderID:     orderID,
		UserID:      req.UserID,
		PaymentMode: req.PaymentMode,
		Discount:    req.Discount,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.BillCreated, bill)
}

// ListBills godoc
// @Summary List bills
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.Bill}
// @Router /bills [get]
func (h *BillHandler) ListBills(c echo.Context) error {
	bills, err := h.billService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.BillsFetched, bills)
}

// ExportBills godoc
// @Summary Download every bill as an xlsx workbook
// @Tags bills
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /bills/export [get]
func (h *BillHandler) ExportBills(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.billService.Export(c.Request().Context(), &buf); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bills.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetBill godoc
// @Summary Get a bill with its order
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param billId path string true "Bill ID"
// @Success 200 {object} errors.Response{data=model.BillDetail}
// @Failure 404 {object} errors.Response
// @Router /bills/{billId} [get]
func (h *BillHandler) GetBill(c echo.Context) error {
	id, err := uuidParam(c, "billId")
	if err != nil {
		return err
	}
	bill, err := h.billService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.BillFetched, bill)
}

// UpdateBill godoc
// @Summary Update a bill
// @Description Amounts are recomputed from the billed amount.
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param billId path string true "Bill ID"
// @Param request body UpdateBillRequest true "Bill fields"
// @Success 200 {object} errors.Response{data=model.Bill}
// @Failure 404 {object} errors.Response
// @Router /bills/{billId} [put]
func (h *BillHandler) UpdateBill(c echo.Context) error {
	id, err := uuidParam(c, "billId")
	if err != nil {
		return err
	}
	var req UpdateBillRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	bill, err := h.billService.Update(c.Request().Context(), id, service.UpdateBillInput{
		PaymentMode: req.PaymentMode,
		Discount:    req.Discount,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.BillUpdated, bill)
}

// DeleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param billId path string true "Bill ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /bills/{billId} [delete]
func (h *BillHandler) DeleteBill(c echo.Context) error {
	id, err := uuidParam(c, "billId")
	if err != nil {
		return err
	}
	if err := h.billService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.BillDeleted, nil)
}
