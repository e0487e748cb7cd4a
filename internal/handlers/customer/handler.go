package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"roombook/infras/otel"
	"roombook/internal/domains/customer/service"
	"roombook/shared/constant"
	"roombook/transport/http/response"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/booked", handler.GetCustomersBooked)
		routerGroup.Get("/booking-count", handler.GetBookingCount)
	})
}

// GetCustomers retrieves every known customer.
// @Summary Get all customers
// @Description Retrieve every customer that has ever booked a room, in first-booking order.
// @Tags Customer
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CustomerResponse] "List of customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(ctx))
}

// GetCustomersBooked retrieves every customer with their current booking.
// @Summary Get all customers with booking details
// @Description Retrieve every customer joined with the first booking carrying their name; booking fields are null when none exists.
// @Tags Customer
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CustomerStatusResponse] "List of customers with booking details"
// @Failure 500 {object} response.Error
// @Router /v1/customers/booked [get]
func (handler *Handler) GetCustomersBooked(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomersBooked")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.WithBookedStatus(ctx))
}

// GetBookingCount counts the bookings made under an exact customer name.
// @Summary Count bookings of a customer
// @Description Count every booking made under the exact customer name. An unknown name yields a zero count.
// @Tags Customer
// @Accept json
// @Produce json
// @Param customerName query string false "Customer name (exact match)"
// @Success 200 {object} response.Data[dto.BookingCountResponse] "Booking count"
// @Failure 500 {object} response.Error
// @Router /v1/customers/booking-count [get]
func (handler *Handler) GetBookingCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingCount")
	defer scope.End()

	customerName := r.URL.Query().Get(constant.RequestParamCustomerName)

	response.WithJSON(w, http.StatusOK, handler.service.BookingCount(ctx, customerName))
}
