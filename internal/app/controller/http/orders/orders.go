package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/voyago/travel-order-service/internal/app/controller/http/utils"
	"github.com/voyago/travel-order-service/internal/app/converter"
	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/errors"
	"github.com/voyago/travel-order-service/internal/app/validator"
)

const (
	ErrInvalidAuth = "auth credentials are invalid"

	MsgOrderCreated = "travel order created successfully"
	MsgNotFound     = "requested travel order not found"
	MsgForbidden    = "action is not allowed"
)

type OrderService interface {
	Create(ctx context.Context, actor entity.Actor, order entity.TravelOrder) (entity.TravelOrder, error)
	List(ctx context.Context, actor entity.Actor, filter entity.OrderFilter) (entity.TravelOrders, error)
	Get(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, *entity.User, error)
	Approve(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, error)
	Cancel(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, error)
}

type Order struct {
	service OrderService
}

func New(service OrderService) Order {
	return Order{
		service: service,
	}
}

func (p *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := p.parseActor(w, r)
		if err != nil {
			zap.L().Info("error while parsing actor while creating order", zap.Error(err))
			return
		}

		var createRequest model.CreateOrderRequest
		err = json.NewDecoder(r.Body).Decode(&createRequest)
		if err != nil {
			zap.L().Info("error while decoding create order request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if fields := validator.ValidateCreateOrderRequest(createRequest); len(fields) > 0 {
			httputils.WriteJSON(w, http.StatusUnprocessableEntity, model.FieldErrorsResponse{
				Message: "order validation failed",
				Errors:  fields,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.service.Create(ctx, actor, converter.ConvertCreateRequestToOrder(createRequest))
		if err != nil {
			p.writeServiceError(err, w)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, model.CreateOrderResponse{
			Data:    converter.ConvertOrderToResponse(order),
			Message: MsgOrderCreated,
		})
	}
}

func (p *Order) GetOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := p.parseActor(w, r)
		if err != nil {
			zap.L().Info("error while parsing actor while listing orders", zap.Error(err))
			return
		}

		listRequest := model.ListOrdersRequest{
			Status:      r.URL.Query().Get("status"),
			Destination: r.URL.Query().Get("destination"),
			StartDate:   r.URL.Query().Get("start_date"),
			EndDate:     r.URL.Query().Get("end_date"),
		}

		filter, fields := validator.ValidateListOrdersRequest(listRequest)
		if len(fields) > 0 {
			httputils.WriteJSON(w, http.StatusBadRequest, model.FieldErrorsResponse{
				Message: "filter validation failed",
				Errors:  fields,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.service.List(ctx, actor, filter)
		if err != nil {
			p.writeServiceError(err, w)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.OrdersResponse{
			Data: converter.ConvertOrdersToResponse(orders),
		})
	}
}

func (p *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := p.parseActor(w, r)
		if err != nil {
			zap.L().Info("error while parsing actor while getting order", zap.Error(err))
			return
		}

		orderID, err := p.parseOrderID(w, r)
		if err != nil {
			zap.L().Info("error while parsing order id while getting order", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, owner, err := p.service.Get(ctx, actor, orderID)
		if err != nil {
			p.writeServiceError(err, w)
			return
		}

		response := converter.ConvertOrderToResponse(order)
		if owner != nil {
			response = converter.ConvertOrderToResponseWithOwner(order, *owner)
		}

		httputils.WriteJSON(w, http.StatusOK, model.OrderDataResponse{Data: response})
	}
}

func (p *Order) ApproveOrder() http.HandlerFunc {
	return p.transitionHandler(p.service.Approve, "approving")
}

func (p *Order) CancelOrder() http.HandlerFunc {
	return p.transitionHandler(p.service.Cancel, "cancelling")
}

func (p *Order) transitionHandler(transit func(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, error), action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := p.parseActor(w, r)
		if err != nil {
			zap.L().Info(fmt.Sprintf("error while parsing actor while %s order", action), zap.Error(err))
			return
		}

		orderID, err := p.parseOrderID(w, r)
		if err != nil {
			zap.L().Info(fmt.Sprintf("error while parsing order id while %s order", action), zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := transit(ctx, actor, orderID)
		if err != nil {
			p.writeServiceError(err, w)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.OrderDataResponse{
			Data: converter.ConvertOrderToResponse(order),
		})
	}
}

func (p *Order) writeServiceError(err error, w http.ResponseWriter) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		httputils.WriteJSON(w, http.StatusUnprocessableEntity, model.FieldErrorsResponse{
			Message: "order validation failed",
			Errors:  validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		httputils.WriteJSON(w, http.StatusNotFound, model.MessageResponse{Message: MsgNotFound})
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrInvalidTransition):
		httputils.WriteJSON(w, http.StatusForbidden, model.MessageResponse{Message: MsgForbidden})
	default:
		zap.L().Error("error while processing order request", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (p *Order) parseOrderID(w http.ResponseWriter, r *http.Request) (entity.OrderID, error) {
	orderID := entity.OrderID(chi.URLParam(r, "id"))
	if !orderID.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		return entity.OrderID(""), fmt.Errorf("order id is empty")
	}

	return orderID, nil
}

func (p *Order) parseActor(w http.ResponseWriter, r *http.Request) (entity.Actor, error) {
	userCtx, err := httputils.GetUserCtxFromContext(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.Actor{}, err
	}

	if userCtx.StatusCode != http.StatusOK {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.Actor{}, errors.New(ErrInvalidAuth)
	}

	return userCtx.Actor, nil
}
