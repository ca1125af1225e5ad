package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
)

const (
	RequestTimeout = 3 * time.Second
)

func GetUserCtxFromContext(r *http.Request) (entity.UserCtx, error) {
	userCtx, ok := r.Context().Value(entity.UserCtxKey{}).(entity.UserCtx)
	if !ok {
		return entity.UserCtx{}, fmt.Errorf("user context couldn't be obtained from request")
	}

	if userCtx.StatusCode == http.StatusOK && !userCtx.Actor.ID.Valid() {
		return entity.UserCtx{}, fmt.Errorf("invalid user id with status ok")
	}

	return userCtx, nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}
