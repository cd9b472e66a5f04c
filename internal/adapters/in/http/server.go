package http

import (
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the order backend.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	attachCustomerHandler    commands.AttachCustomerCommandHandler
	attachItemHandler        commands.AttachItemCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getAllOrdersHandler          queries.GetAllOrdersQueryHandler
	getNewOrdersHandler          queries.GetNewOrdersQueryHandler
	getOrderByIDHandler          queries.GetOrderByIDQueryHandler
	getProductsByCategoryHandler queries.GetProductsByCategoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	attachCustomerHandler commands.AttachCustomerCommandHandler,
	attachItemHandler commands.AttachItemCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getNewOrdersHandler queries.GetNewOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getProductsByCategoryHandler queries.GetProductsByCategoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		attachCustomerHandler:        attachCustomerHandler,
		attachItemHandler:            attachItemHandler,
		payOrderHandler:              payOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getNewOrdersHandler:          getNewOrdersHandler,
		getOrderByIDHandler:          getOrderByIDHandler,
		getProductsByCategoryHandler: getProductsByCategoryHandler,
	}
}

// RegisterRoutes binds every endpoint to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/new", s.GetNewOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/customer", s.AttachCustomer)
	api.PUT("/orders/:id/items", s.AttachItem)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/products", s.GetProducts)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
// The body is optional; references to customer and items may be attached later.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseOptionalUUID(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	mainID, err := parseOptionalUUID(req.MainID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sideID, err := parseOptionalUUID(req.SideID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	drinkID, err := parseOptionalUUID(req.DrinkID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, mainID, sideID, drinkID, req.PaymentMethod,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists every order in kitchen
// priority order.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetNewOrders handles GET /api/v1/orders/new - lists paid orders awaiting
// the kitchen.
func (s *Server) GetNewOrders(ctx echo.Context) error {
	query := queries.NewGetNewOrdersQuery()

	orders, err := s.getNewOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	foundOrder, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(foundOrder))
}

// AttachCustomer handles PUT /api/v1/orders/:id/customer - identifies an
// order with a registered customer.
func (s *Server) AttachCustomer(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AttachCustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAttachCustomerCommand(orderID, customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.attachCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachItem handles PUT /api/v1/orders/:id/items - fills one item slot
// with a catalog product.
func (s *Server) AttachItem(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AttachItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAttachItemCommand(orderID, req.Slot, productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.attachItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/:id/payment - submits an order for
// payment and returns the resulting status.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req PayOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(orderID, req.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	paidOrder, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     paidOrder.ID().String(),
		"status": paidOrder.Status().String(),
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - lists one menu section picked
// by the category query parameter.
func (s *Server) GetProducts(ctx echo.Context) error {
	query, err := queries.NewGetProductsByCategoryQuery(ctx.QueryParam("category"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	products, err := s.getProductsByCategoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, item := range products {
		response[i] = toProductResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func parsePathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, item := range orders {
		response[i] = toOrderResponse(item)
	}

	return response
}
