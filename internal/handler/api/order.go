package api

import (
	"errors"
	"net/http"

	"order-service/internal/domain/order"
	reqdto "order-service/internal/handler/dto/request"
	resdto "order-service/internal/handler/dto/response"
	"order-service/internal/handler/httperr"
	"order-service/internal/infra/catalog"
	"order-service/internal/pkg/errs"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Create a new order; prices are resolved from the product catalog
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.orderCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

func (h *OrderHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)

	case errors.Is(err, errs.ErrProductNotFound):
		var catErr *catalog.Error
		detail := gin.H{}
		if errors.As(err, &catErr) {
			detail["productId"] = catErr.ProductID
		}
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", detail)

	case errors.Is(err, errs.ErrInsufficientStock):
		var stockErr *order.InsufficientStockError
		detail := gin.H{}
		if errors.As(err, &stockErr) {
			detail["productId"] = stockErr.ProductID
			detail["requested"] = stockErr.Requested
			detail["available"] = stockErr.Available
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient stock", detail)

	case errors.Is(err, errs.ErrCatalogUnavailable):
		// Transient; the client may retry. Deterministic failures above must not be retried.
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Product catalog unavailable", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.orderQueries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description Get all orders
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	views, err := h.orderQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary List orders by customer
// @Description Get all orders placed by a customer email (possibly empty)
// @Tags orders
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {array} resdto.OrderResponse
// @Router /api/orders/customer/{email} [get]
func (h *OrderHandler) ListOrdersByCustomer(c *gin.Context) {
	email := c.Param("email")

	views, err := h.orderQueries.ListByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}
