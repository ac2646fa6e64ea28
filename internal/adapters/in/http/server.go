// Package http exposes the ordering use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderAddress is the delivery address part of a create order request.
type OrderAddress struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// OrderItemRequest is a single item line of a create order request.
// Prices are decimal strings to keep exact money semantics on the wire.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"subTotal"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	RestaurantID string             `json:"restaurantId"`
	Address      OrderAddress       `json:"address"`
	Price        string             `json:"price"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse is returned after a successful order creation.
type CreateOrderResponse struct {
	OrderID    string `json:"orderId"`
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// TrackOrderResponse is returned by GET /api/v1/orders/:trackingId.
type TrackOrderResponse struct {
	TrackingID      string   `json:"trackingId"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages,omitempty"`
}

// CancelOrderRequest carries the reasons for a cancellation request.
type CancelOrderRequest struct {
	FailureMessages []string `json:"failureMessages"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	payOrderHandler           commands.PayOrderCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	cancelOrderPaymentHandler commands.CancelOrderPaymentCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	cancelOrderPaymentHandler commands.CancelOrderPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		payOrderHandler:           payOrderHandler,
		approveOrderHandler:       approveOrderHandler,
		cancelOrderPaymentHandler: cancelOrderPaymentHandler,
		cancelOrderHandler:        cancelOrderHandler,
		trackOrderHandler:         trackOrderHandler,
	}
}

// RegisterRoutes wires all order endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/api/v1/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("/:trackingId", s.TrackOrder)
	orders.POST("/:orderId/pay", s.PayOrder)
	orders.POST("/:orderId/approve", s.ApproveOrder)
	orders.POST("/:orderId/payment-cancel", s.CancelOrderPayment)
	orders.POST("/:orderId/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := createOrderCommand(request)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:    result.OrderID.String(),
		TrackingID: result.TrackingID.String(),
		Status:     result.Status.String(),
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId - returns order status.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking ID")
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking ID")
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		TrackingID:      response.TrackingID.String(),
		Status:          response.Status.String(),
		FailureMessages: response.FailureMessages,
	})
}

// PayOrder handles POST /api/v1/orders/:orderId/pay - confirms payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:orderId/approve - restaurant approval.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderPayment handles POST /api/v1/orders/:orderId/payment-cancel -
// starts the refund compensation for a paid order.
func (s *Server) CancelOrderPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderPaymentCommand(orderID, request.FailureMessages)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	if err := s.cancelOrderPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - terminally
// cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.FailureMessages)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func createOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.OrderItemData, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, itemErr := kernel.UUIDFromString(itemRequest.ProductID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		itemPrice, itemErr := kernel.NewMoneyFromString(itemRequest.Price)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		itemSubTotal, itemErr := kernel.NewMoneyFromString(itemRequest.SubTotal)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		items = append(items, commands.OrderItemData{
			ProductID: productID,
			Quantity:  itemRequest.Quantity,
			Price:     itemPrice,
			SubTotal:  itemSubTotal,
		})
	}

	return commands.NewCreateOrderCommand(
		customerID,
		restaurantID,
		request.Address.Street,
		request.Address.PostalCode,
		request.Address.City,
		price,
		items,
	)
}

// domainError maps domain and application errors to HTTP status codes.
// Invariant violations mean the request was well formed but not allowed in
// the order's current state, hence 422.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvariantViolation):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
