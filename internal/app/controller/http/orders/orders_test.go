package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-module/carbon/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-order-service/internal/app/controller/http/orders/mock"
	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/errors"
)

const (
	testUserID  = "ac2a4811-4f10-487f-bde3-e39a14af7cd8"
	testOrderID = "5c6e3bcf-0f15-4f8a-a739-b4356a2f0c42"
)

func authorizedCtx(r *http.Request, actor entity.Actor) *http.Request {
	userCtx := entity.CreateUserCtx(actor, "token-id", time.Now().Add(time.Hour), http.StatusOK)

	return r.WithContext(context.WithValue(r.Context(), entity.UserCtxKey{}, userCtx))
}

func withOrderID(r *http.Request, orderID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func storedOrder() entity.TravelOrder {
	return entity.TravelOrder{
		ID:            entity.OrderID(testOrderID),
		UserID:        entity.UserID(testUserID),
		RequesterName: "Ana Souza",
		Destination:   "Lisbon",
		DepartureDate: time.Date(2027, time.March, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2027, time.March, 20, 0, 0, 0, 0, time.UTC),
		Price:         1500.50,
		Status:        entity.StatusPendingOrder,
		DateCreated:   time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	}
}

func createOrderBody(departure, returnDate string) string {
	return fmt.Sprintf(`{"requester_name":"Ana Souza","destination":"Lisbon","departure_date":"%s","return_date":"%s","price":1500.50}`, departure, returnDate)
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderService(ctrl)

	departure := carbon.Now().AddDays(10).ToDateString()
	returnDate := carbon.Now().AddDays(20).ToDateString()

	type want struct {
		statusCode int
		status     string
	}
	tests := []struct {
		name       string
		body       string
		isContext  bool
		isCreate   bool
		createErr  error
		statusCode int

		want want
	}{
		{
			name:       "order created",
			body:       createOrderBody(departure, returnDate),
			isContext:  true,
			isCreate:   true,
			statusCode: http.StatusOK,

			want: want{
				statusCode: http.StatusCreated,
				status:     string(entity.StatusPendingOrder),
			},
		},
		{
			name:       "departure date in the past",
			body:       createOrderBody("2020-01-01", returnDate),
			isContext:  true,
			isCreate:   false,
			statusCode: http.StatusOK,

			want: want{
				statusCode: http.StatusUnprocessableEntity,
			},
		},
		{
			name:       "return before departure",
			body:       createOrderBody(returnDate, departure),
			isContext:  true,
			isCreate:   false,
			statusCode: http.StatusOK,

			want: want{
				statusCode: http.StatusUnprocessableEntity,
			},
		},
		{
			name:       "malformed json body",
			body:       `{"requester_name":`,
			isContext:  true,
			isCreate:   false,
			statusCode: http.StatusOK,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:      "user context undefined",
			body:      createOrderBody(departure, returnDate),
			isContext: false,
			isCreate:  false,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:       "user unauthorized",
			body:       createOrderBody(departure, returnDate),
			isContext:  true,
			isCreate:   false,
			statusCode: http.StatusUnauthorized,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/travel-orders", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isContext {
				actor := entity.Actor{ID: entity.UserID(testUserID)}
				userCtx := entity.CreateUserCtx(actor, "token-id", time.Now().Add(time.Hour), test.statusCode)
				request = request.WithContext(context.WithValue(request.Context(), entity.UserCtxKey{}, userCtx))
			}

			if test.isCreate {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedOrder(), test.createErr)
			} else {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			orders := New(s)
			handler := orders.CreateOrder()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if len(test.want.status) != 0 {
				var response model.CreateOrderResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Equal(t, test.want.status, response.Data.Status)
				assert.Equal(t, testOrderID, response.Data.ID)
			}
		})
	}
}

func TestGetOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderService(ctrl)

	type want struct {
		statusCode int
		count      int
	}
	tests := []struct {
		name   string
		target string
		isList bool
		orders entity.TravelOrders

		want want
	}{
		{
			name:   "orders listed",
			target: "/api/travel-orders",
			isList: true,
			orders: entity.TravelOrders{storedOrder()},

			want: want{
				statusCode: http.StatusOK,
				count:      1,
			},
		},
		{
			name:   "filtered by status and destination",
			target: "/api/travel-orders?status=pending&destination=lis",
			isList: true,
			orders: entity.TravelOrders{storedOrder()},

			want: want{
				statusCode: http.StatusOK,
				count:      1,
			},
		},
		{
			name:   "empty result",
			target: "/api/travel-orders?status=cancelled",
			isList: true,
			orders: entity.TravelOrders{},

			want: want{
				statusCode: http.StatusOK,
				count:      0,
			},
		},
		{
			name:   "unknown status filter",
			target: "/api/travel-orders?status=rejected",
			isList: false,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:   "malformed period filter",
			target: "/api/travel-orders?start_date=10-03-2027",
			isList: false,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, test.target, nil)
			request = authorizedCtx(request, entity.Actor{ID: entity.UserID(testUserID)})
			writer := httptest.NewRecorder()

			if test.isList {
				s.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(test.orders, nil)
			} else {
				s.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			orders := New(s)
			handler := orders.GetOrders()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if res.StatusCode == http.StatusOK {
				var response model.OrdersResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Len(t, response.Data, test.want.count)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderService(ctrl)

	owner := &entity.User{
		ID:    entity.UserID(testUserID),
		Login: "ana",
	}

	type want struct {
		statusCode int
		hasOwner   bool
	}
	tests := []struct {
		name   string
		isGet  bool
		owner  *entity.User
		getErr error

		want want
	}{
		{
			name:  "order found",
			isGet: true,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:  "order found with owner for admin",
			isGet: true,
			owner: owner,

			want: want{
				statusCode: http.StatusOK,
				hasOwner:   true,
			},
		},
		{
			name:   "order not visible",
			isGet:  true,
			getErr: usecase.ErrOrderNotFound,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/travel-orders/"+testOrderID, nil)
			request = authorizedCtx(request, entity.Actor{ID: entity.UserID(testUserID)})
			request = withOrderID(request, testOrderID)
			writer := httptest.NewRecorder()

			if test.isGet {
				s.EXPECT().Get(gomock.Any(), gomock.Any(), entity.OrderID(testOrderID)).Return(storedOrder(), test.owner, test.getErr)
			}

			orders := New(s)
			handler := orders.GetOrder()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if res.StatusCode == http.StatusOK {
				var response model.OrderDataResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Equal(t, testOrderID, response.Data.ID)
				assert.Equal(t, test.want.hasOwner, response.Data.User != nil)
			}
		})
	}
}

func TestTransitionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderService(ctrl)

	approvedOrder := storedOrder()
	approvedOrder.Status = entity.StatusApprovedOrder

	cancelledOrder := storedOrder()
	cancelledOrder.Status = entity.StatusCancelledOrder

	type want struct {
		statusCode int
		status     string
	}
	tests := []struct {
		name       string
		action     entity.OrderAction
		order      entity.TravelOrder
		transitErr error

		want want
	}{
		{
			name:   "pending order approved",
			action: entity.ActionApproveOrder,
			order:  approvedOrder,

			want: want{
				statusCode: http.StatusOK,
				status:     string(entity.StatusApprovedOrder),
			},
		},
		{
			name:   "pending order cancelled",
			action: entity.ActionCancelOrder,
			order:  cancelledOrder,

			want: want{
				statusCode: http.StatusOK,
				status:     string(entity.StatusCancelledOrder),
			},
		},
		{
			name:       "approve forbidden for regular user",
			action:     entity.ActionApproveOrder,
			transitErr: usecase.ErrForbidden,

			want: want{
				statusCode: http.StatusForbidden,
			},
		},
		{
			name:       "cancel of approved order rejected",
			action:     entity.ActionCancelOrder,
			transitErr: usecase.ErrInvalidTransition,

			want: want{
				statusCode: http.StatusForbidden,
			},
		},
		{
			name:       "order not found",
			action:     entity.ActionApproveOrder,
			transitErr: usecase.ErrOrderNotFound,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target := fmt.Sprintf("/api/travel-orders/%s/%s", testOrderID, test.action)
			request := httptest.NewRequest(http.MethodPatch, target, nil)
			request = authorizedCtx(request, entity.Actor{ID: entity.UserID(testUserID), IsAdmin: true})
			request = withOrderID(request, testOrderID)
			writer := httptest.NewRecorder()

			orders := New(s)

			var handler http.HandlerFunc
			if test.action == entity.ActionApproveOrder {
				s.EXPECT().Approve(gomock.Any(), gomock.Any(), entity.OrderID(testOrderID)).Return(test.order, test.transitErr)
				handler = orders.ApproveOrder()
			} else {
				s.EXPECT().Cancel(gomock.Any(), gomock.Any(), entity.OrderID(testOrderID)).Return(test.order, test.transitErr)
				handler = orders.CancelOrder()
			}

			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if len(test.want.status) != 0 {
				var response model.OrderDataResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Equal(t, test.want.status, response.Data.Status)
			}
		})
	}
}
